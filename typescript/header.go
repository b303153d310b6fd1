package typescript

import "github.com/angular-template/swagen-typescript-language/model"

const headerBorder = "//------------------------------------------------------------------------------"

// FileHeader renders the comment block placed at the top of every generated
// file. The generator name is interpolated as-is; an empty Profile.Generator
// is a caller error. The mode line appears only when Profile.Mode is set, and
// the metadata lines only when the definition carries metadata.
func FileHeader(profile model.Profile, definition *model.Definition) []string {
	lines := []string{
		headerBorder,
		"// <auto-generated>",
		"//     This code was generated by " + profile.Generator + ".",
	}
	if profile.Mode != "" {
		lines = append(lines, "//     Generation mode: "+profile.Mode+".")
	}
	lines = append(lines,
		"// </auto-generated>",
		headerBorder,
	)
	if definition == nil || definition.Metadata == nil {
		return lines
	}
	md := definition.Metadata
	if md.Title != "" {
		lines = append(lines, "// Title: "+md.Title)
	}
	if md.Description != "" {
		lines = append(lines, "// Description: "+md.Description)
	}
	if md.BaseURL != "" {
		lines = append(lines, "// Base URL: "+md.BaseURL)
	}
	return lines
}
