package app

import (
	"fmt"
	"strings"
	"tagmore/keys"
	"tagmore/ui"
)

// helpKeys is the display order of the help screen.
var helpKeys = []keys.KeyName{
	keys.KeyUp, keys.KeyDown, keys.KeyToggle, keys.KeyCopy,
	keys.KeyGapUp, keys.KeyGapDown, keys.KeyWidthUp, keys.KeyWidthDown,
	keys.KeyMeasurer, keys.KeyOpen, keys.KeyReload, keys.KeyHelp, keys.KeyQuit,
}

func helpText() string {
	var b strings.Builder
	b.WriteString(ui.TextStyles.Title.Render("tagmore"))
	b.WriteString("\n\n")
	b.WriteString(ui.TextStyles.Secondary.Render(
		"Rows show the tags that fit on one line.\n" +
			"+N counts the rest; enter lists them all."))
	b.WriteString("\n\n")

	for _, name := range helpKeys {
		h := keys.GlobalkeyBindings[name].Help()
		b.WriteString(ui.TextStyles.Primary.Render(fmt.Sprintf("%-8s", h.Key)))
		b.WriteString(ui.TextStyles.Muted.Render(h.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ui.TextStyles.Muted.Render("press any key to close"))
	return b.String()
}
