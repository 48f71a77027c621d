package keyword

// Builtin returns the default table of documentation-index keywords and their
// descriptions, as shipped with the host's finder.
func Builtin() *Table {
	return NewTable(map[string]string{
		"abbrev":      "abbreviation handling, typing shortcuts, and macros",
		"bib":         "bibliography processors",
		"c":           "support for the C language and related languages",
		"calendar":    "calendar and time management support",
		"comm":        "communications, networking, and remote access to files",
		"convenience": "convenience features for faster editing",
		"data":        "editing data (non-text) files",
		"docs":        "documentation support",
		"emulations":  "emulations of other editors",
		"extensions":  "language extensions",
		"faces":       "fonts and colors for text",
		"files":       "file editing and manipulation",
		"frames":      "window and frame management",
		"games":       "games, jokes and amusements",
		"hardware":    "support for interfacing with system hardware",
		"help":        "on-line help systems",
		"hypermedia":  "links between text or other media types",
		"i18n":        "internationalization and character-set support",
		"internal":    "code implementing core functionality",
		"languages":   "specialized modes for editing programming languages",
		"lisp":        "Lisp support and editing modes",
		"local":       "site-specific customizations",
		"mail":        "email reading and posting",
		"maint":       "maintenance aids for development",
		"matching":    "searching, matching, and sorting",
		"mouse":       "mouse support",
		"multimedia":  "images and sound",
		"news":        "netnews reading and posting",
		"outlines":    "hierarchical outlining and note taking",
		"processes":   "processes, subshells, and compilation",
		"terminals":   "support for terminal types",
		"tex":         "the TeX document formatter",
		"tools":       "programming tools",
		"unix":        "utilities specific to Unix-like operating systems",
		"vc":          "version control",
		"wp":          "word processing",
	})
}
