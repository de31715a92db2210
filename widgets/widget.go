package widgets

// Widget is anything that can draw itself into a width x height cell grid.
type Widget interface {
	Render(width, height int) string
}
