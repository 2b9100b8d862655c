package model

// WindowNode is one top-level surface: its screen rectangle, optional
// title, and the root of its element tree. A window always has a root.
type WindowNode struct {
	X      int    `yaml:"x"               json:"x"`
	Y      int    `yaml:"y"               json:"y"`
	Width  int    `yaml:"w"               json:"w"`
	Height int    `yaml:"h"               json:"h"`
	Title  string `yaml:"title,omitempty" json:"title,omitempty"`

	Root ElementNode `yaml:"root" json:"root"`
}
