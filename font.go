package main

import (
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const fontSize = 16

// LoadUIFont loads the TrueType font at path, falling back to
// basicfont.Face7x13 when it is missing or unreadable.
func LoadUIFont(path string) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[font] %s not found, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Printf("[font] %s: parse error, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: fontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("[font] %s: face error, using basic font: %v", path, err)
		return basicfont.Face7x13
	}
	return face
}

// DrawTextLines draws s line by line with (x, y) as the top of the first line.
func DrawTextLines(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color) {
	if face == nil {
		face = basicfont.Face7x13
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := metrics.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = fontSize
	}
	for i, line := range strings.Split(s, "\n") {
		text.Draw(screen, line, face, x, y+ascent+i*lineHeight, clr)
	}
}
