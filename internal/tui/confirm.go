package tui

func confirmView(subject string) string {
	content := "Delete \"" + subject + "\"?\n\n"
	content += "y: yes    n: no"
	return overlayBoxStyle.Render(content)
}
