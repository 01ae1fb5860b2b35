// Package infogen renders a single-page infographic PNG from a JSON data
// file.
//
// # Overview
//
// The input document describes a topic: a title block, headline stats,
// platform shares, age demographics, a timeline and a few text lists.
// [Load] parses it into a [Spec]; a [Renderer] draws a fixed sequence of
// panels onto a gg canvas and writes the result.
//
//	spec, err := infogen.Load("data.json")
//	if err != nil {
//	    return err
//	}
//	r, err := infogen.NewRenderer(infogen.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	out, err := r.RenderFile(spec, "output_infographic.png")
//
// # Layout
//
// Panels occupy cells of a fixed grid, described by a [Layout]. Two presets
// exist: "desktop" (1800x3300) and "phone" (1080x1920). A YAML file loaded
// with [LoadConfig] can override any field of a preset.
//
// # Errors
//
// Load failures are reported as [*InputError] and drawing failures as
// [*RenderError]; both wrap one of the package's sentinel errors.
package infogen
