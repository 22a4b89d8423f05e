package notice

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notice is a short user-facing message such as a toast.
type Notice struct {
	Title       string
	Description string
	Variant     Variant
}
