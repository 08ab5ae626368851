package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// ErrEntityNotFound is returned when a scene has no object with the requested name.
var ErrEntityNotFound = errors.New("entity not found")

// Object group names read from scene maps.
const (
	GroupEntities = "Entities"
	GroupWalls    = "Walls"
)

// SceneEntity is a named point placed in the Entities object group.
type SceneEntity struct {
	Name string
	X, Y float64
}

// Wall is a solid rectangle from the Walls object group.
type Wall struct {
	Name                string
	X, Y, Width, Height float64
}

type Scene struct {
	Name     string
	Width    int
	Height   int
	Entities []SceneEntity
	Walls    []Wall
}

// Entity returns the first entity called name.
func (s *Scene) Entity(name string) (SceneEntity, error) {
	for _, e := range s.Entities {
		if e.Name == name {
			return e, nil
		}
	}
	return SceneEntity{}, fmt.Errorf("%s in %s: %w", name, s.Name, ErrEntityNotFound)
}

type SceneLoader struct {
	fsys fs.FS
}

// NewSceneLoader reads maps from the embedded levels directory.
func NewSceneLoader() *SceneLoader {
	return &SceneLoader{fsys: assetFS}
}

// NewSceneLoaderFS reads maps from fsys instead.
func NewSceneLoaderFS(fsys fs.FS) *SceneLoader {
	return &SceneLoader{fsys: fsys}
}

func (l *SceneLoader) LoadScene(path string) (*Scene, error) {
	sceneMap, err := tiled.LoadFile(path, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	scene := &Scene{
		Name:   path,
		Width:  sceneMap.Width * sceneMap.TileWidth,
		Height: sceneMap.Height * sceneMap.TileHeight,
	}

	for _, og := range sceneMap.ObjectGroups {
		switch og.Name {
		case GroupEntities:
			for _, o := range og.Objects {
				scene.Entities = append(scene.Entities, SceneEntity{
					Name: o.Name,
					X:    o.X,
					Y:    o.Y,
				})
			}
		case GroupWalls:
			for _, o := range og.Objects {
				scene.Walls = append(scene.Walls, Wall{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	return scene, nil
}
