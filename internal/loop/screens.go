package loop

import (
	"github.com/tomz197/aimtrainer/internal/draw"
	"github.com/tomz197/aimtrainer/internal/loop/config"
	"github.com/tomz197/aimtrainer/internal/object"
)

// Status bar label x positions, logical units.
const (
	topBarTimeX  = 5
	topBarSpeedX = 200
	topBarHitsX  = 450
	topBarLivesX = 650
	topBarTextY  = 5
)

// summaryRowsY are the summary label rows, logical units.
var summaryRowsY = [...]float64{100, 200, 300, 400}

// drawPlaying draws targets and the status bar.
func (c *Client) drawPlaying() error {
	ctx := c.drawContext()

	c.canvas.Fill(config.BackgroundColor)
	if err := object.DrawAll(ctx, c.session.Targets); err != nil {
		return err
	}
	c.canvas.FillRect(draw.Rect{W: config.Width, H: config.TopBarHeight}, config.TopBarColor)

	c.canvas.Render(c.chunkWriter)

	if err := object.DrawAll(ctx, topBarLabels(c.session.Stats)); err != nil {
		return err
	}

	return c.chunkWriter.Flush()
}

// drawSummary draws the end-of-session screen.
func (c *Client) drawSummary() error {
	ctx := c.drawContext()

	c.canvas.Fill(config.BackgroundColor)
	c.canvas.Render(c.chunkWriter)

	if err := object.DrawAll(ctx, summaryLabels(c.session.Stats)); err != nil {
		return err
	}

	return c.chunkWriter.Flush()
}

func (c *Client) drawContext() object.DrawContext {
	return object.DrawContext{
		Canvas: c.canvas,
		Writer: c.chunkWriter,
	}
}

// topBarLabels lays out time, speed, hits and lives across the status bar.
func topBarLabels(s Stats) []object.Label {
	style := draw.TextStyle(config.TopBarTextColor, config.TopBarColor)
	return []object.Label{
		{X: topBarTimeX, Y: topBarTextY, Value: timeText(s), Style: style},
		{X: topBarSpeedX, Y: topBarTextY, Value: speedText(s), Style: style},
		{X: topBarHitsX, Y: topBarTextY, Value: hitsText(s), Style: style},
		{X: topBarLivesX, Y: topBarTextY, Value: livesText(s), Style: style},
	}
}

// summaryLabels centers time, speed, hits and accuracy on the end screen.
func summaryLabels(s Stats) []object.Label {
	style := draw.TextStyle(config.EndTextColor, config.BackgroundColor)
	values := [...]string{timeText(s), speedText(s), hitsText(s), accuracyText(s)}

	labels := make([]object.Label, len(values))
	for i, v := range values {
		labels[i] = object.Label{
			X:        config.Width / 2,
			Y:        summaryRowsY[i],
			Value:    v,
			Style:    style,
			Centered: true,
		}
	}
	return labels
}
