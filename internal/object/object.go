// Package object holds the entities drawn on the game surface.
package object

import (
	"github.com/tomz197/aimtrainer/internal/draw"
)

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas      // Logical 2x vertical resolution surface
	Writer *draw.ChunkWriter // Frame output for text overlays
}

// Drawable is anything that can paint itself for the current frame.
type Drawable interface {
	// Draw draws the object. Shapes go to ctx.Canvas, text to ctx.Writer.
	Draw(ctx DrawContext) error
}

// DrawAll draws items in order, stopping at the first error.
func DrawAll[T Drawable](ctx DrawContext, items []T) error {
	for _, item := range items {
		if err := item.Draw(ctx); err != nil {
			return err
		}
	}
	return nil
}
