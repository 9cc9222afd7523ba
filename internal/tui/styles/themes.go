package styles

import (
	"github.com/charmbracelet/x/exp/charmtone"
)

func NewCharmTheme() *Theme {
	return &Theme{
		Name:   "charm",
		IsDark: true,

		Primary:   charmtone.Charple,
		Secondary: charmtone.Dolly,
		Tertiary:  charmtone.Bok,
		Accent:    charmtone.Zest,

		// Backgrounds
		BgBase:    charmtone.Pepper,
		BgSubtle:  charmtone.Charcoal,
		BgOverlay: charmtone.Iron,

		// Foregrounds
		FgBase:      charmtone.Ash,
		FgMuted:     charmtone.Squid,
		FgHalfMuted: charmtone.Smoke,
		FgSubtle:    charmtone.Oyster,
		FgSelected:  charmtone.Salt,

		Border:      charmtone.Charcoal,
		BorderFocus: charmtone.Charple,

		Success: charmtone.Guac,
		Error:   charmtone.Sriracha,
		Warning: charmtone.Zest,
		Info:    charmtone.Malibu,

		Blue:   charmtone.Malibu,
		Green:  charmtone.Julep,
		Red:    charmtone.Coral,
		Yellow: charmtone.Mustard,
	}
}

func NewButterTheme() *Theme {
	return &Theme{
		Name:   "butter",
		IsDark: false,

		Primary:   charmtone.Charple,
		Secondary: charmtone.Cherry,
		Tertiary:  charmtone.Guac,
		Accent:    charmtone.Sriracha,

		BgBase:    charmtone.Butter,
		BgSubtle:  charmtone.Salt,
		BgOverlay: charmtone.Ash,

		FgBase:      charmtone.Pepper,
		FgMuted:     charmtone.Iron,
		FgHalfMuted: charmtone.Charcoal,
		FgSubtle:    charmtone.Squid,
		FgSelected:  charmtone.Salt,

		Border:      charmtone.Smoke,
		BorderFocus: charmtone.Charple,

		Success: charmtone.Guac,
		Error:   charmtone.Sriracha,
		Warning: charmtone.Mustard,
		Info:    charmtone.Sardine,

		Blue:   charmtone.Sardine,
		Green:  charmtone.Guac,
		Red:    charmtone.Sriracha,
		Yellow: charmtone.Mustard,
	}
}
