package widgets

// Widget renders itself into a width x height cell block.
type Widget interface {
	Render(width, height int) string
}

// Text is a static block of text.
type Text string

func (t Text) Render(width, height int) string {
	return clipLines(string(t), width, height)
}
