package window

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Image files looked up in the assets directory.
const (
	PlayerImage   = "player.png"
	ObstacleImage = "obstacle.png"
)

// placeholderColor is used for shapes drawn when an image is missing.
var placeholderColor = color.RGBA{R: 0xff, A: 0xff}

// Sprites holds the images drawn for the player and the obstacle.
type Sprites struct {
	Player   *ebiten.Image
	Obstacle *ebiten.Image
}

// LoadSprites loads the entity images from dir. A missing image falls back
// to a red triangle for the player and a red square for the obstacle; any
// other load failure is an error.
func LoadSprites(dir string, playerSize, obstacleSize int, logger *log.Logger) (Sprites, error) {
	player, err := loadImage(dir, PlayerImage, logger, func() *ebiten.Image {
		return trianglePlaceholder(playerSize)
	})
	if err != nil {
		return Sprites{}, err
	}

	obstacle, err := loadImage(dir, ObstacleImage, logger, func() *ebiten.Image {
		return squarePlaceholder(obstacleSize)
	})
	if err != nil {
		return Sprites{}, err
	}

	return Sprites{Player: player, Obstacle: obstacle}, nil
}

// loadImage reads name from dir, or builds the placeholder when it is absent.
func loadImage(dir, name string, logger *log.Logger, placeholder func() *ebiten.Image) (*ebiten.Image, error) {
	if dir == "" {
		return placeholder(), nil
	}

	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	switch {
	case err == nil:
		logger.Debug("image loaded", "path", path)
		return img, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("image missing, using placeholder", "path", path)
		return placeholder(), nil
	default:
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
}

// trianglePlaceholder draws an upward red triangle filling a size×size image.
func trianglePlaceholder(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	s := float32(size)

	path := vector.Path{}
	path.MoveTo(s/2, 0)
	path.LineTo(s, s)
	path.LineTo(0, s)
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vertices {
		vertices[i].SrcX = 0
		vertices[i].SrcY = 0
		vertices[i].ColorR = float32(placeholderColor.R) / 255
		vertices[i].ColorG = float32(placeholderColor.G) / 255
		vertices[i].ColorB = float32(placeholderColor.B) / 255
		vertices[i].ColorA = float32(placeholderColor.A) / 255
	}

	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	img.DrawTriangles(vertices, indices, white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	return img
}

// squarePlaceholder fills a size×size image with red.
func squarePlaceholder(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	vector.DrawFilledRect(img, 0, 0, float32(size), float32(size), placeholderColor, false)
	return img
}
