// Package deck extracts the spoken text of a .pptx presentation.
// A .pptx file is a ZIP archive with one XML part per slide; only the
// text-bearing shapes are read, no styling or media.
package deck
