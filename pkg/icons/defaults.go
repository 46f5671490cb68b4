package icons

// defaultTable mirrors icons.yaml. It exists so a broken or stripped
// embed can never leave the registry empty.
func defaultTable() map[string]Icon {
	return map[string]Icon{
		string(Check):   {Glyph: "✓", Color: "green"},
		string(Cross):   {Glyph: "✗", Color: "red"},
		string(Info):    {Glyph: "ℹ", Color: "white"},
		string(Warning): {Glyph: "⚠", Color: "yellow"},
		string(Bug):     {Glyph: "\U0001F41B", Color: "yellow"},
		string(Folder):  {Glyph: "\U0001F4C1", Color: "blue"},
		string(Refresh): {Glyph: "\U0001F504", Color: "cyan"},
		string(Gear):    {Glyph: "⚙", Color: "cyan"},

		string(NerdCheck):   {Glyph: "\uF00C", Color: "green"},
		string(NerdCross):   {Glyph: "\uF00D", Color: "red"},
		string(NerdInfo):    {Glyph: "\uF05A", Color: "white"},
		string(NerdWarning): {Glyph: "\uF071", Color: "yellow"},
		string(NerdBug):     {Glyph: "\uF188", Color: "red"},
		string(NerdFolder):  {Glyph: "\uF07B", Color: "blue"},
		string(NerdRefresh): {Glyph: "\uF021", Color: "cyan"},
		string(NerdGear):    {Glyph: "\uF013", Color: "cyan"},
	}
}
