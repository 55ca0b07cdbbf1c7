// Package editor implements the scene-editing side of the engine: the entity
// listing, selection and the component add/remove actions behind the panels.
package editor

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/TheBitDrifter/tableau"
	"go.uber.org/zap"
)

// ComponentKind names a built-in component the editor can attach.
type ComponentKind int

const (
	KindRendering ComponentKind = iota
	KindTransform
	KindTexture
	KindLight
	KindSkybox
)

func (k ComponentKind) String() string {
	switch k {
	case KindRendering:
		return "Rendering"
	case KindTransform:
		return "Transform"
	case KindTexture:
		return "Texture"
	case KindLight:
		return "Light"
	case KindSkybox:
		return "Skybox"
	}
	return fmt.Sprintf("ComponentKind(%d)", int(k))
}

// Node is one row of the scene graph panel.
type Node struct {
	Entity   tableau.Entity
	Name     string
	Selected bool
}

type Editor struct {
	scene    *tableau.Scene
	meshes   tableau.Cache[tableau.Mesh]
	images   tableau.Cache[tableau.Image]
	selected tableau.Entity
	hasSel   bool
	log      *zap.Logger
}

func New(scene *tableau.Scene, meshes tableau.Cache[tableau.Mesh], images tableau.Cache[tableau.Image]) *Editor {
	return &Editor{
		scene:  scene,
		meshes: meshes,
		images: images,
		log:    tableau.Config.Logger().With(zap.Stringer("scene", scene.ID())),
	}
}

func (ed *Editor) Scene() *tableau.Scene {
	return ed.scene
}

// Selected returns the selected entity, if any.
func (ed *Editor) Selected() (tableau.Entity, bool) {
	return ed.selected, ed.hasSel
}

// SceneGraph lists every tagged entity in id order.
func (ed *Editor) SceneGraph() ([]Node, error) {
	entities := tableau.ComponentEntities[tableau.Tag](ed.scene)
	nodes := make([]Node, 0, len(entities))
	for _, e := range entities {
		tag, err := tableau.GetComponent[tableau.Tag](ed.scene, e)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, Node{
			Entity:   e,
			Name:     tag.Name,
			Selected: ed.hasSel && ed.selected == e,
		})
	}
	return nodes, nil
}

// Select makes e the selection. The previous selection loses its outline and
// e gains one if it is drawable.
func (ed *Editor) Select(e tableau.Entity) error {
	if !ed.scene.Valid(e) {
		return tableau.EntityNotFoundError{Entity: e}
	}
	if ed.hasSel && ed.selected == e {
		return nil
	}
	if err := ed.ClearSelection(); err != nil {
		return err
	}
	if err := ed.setOutlined(e, true); err != nil {
		return err
	}
	ed.selected, ed.hasSel = e, true
	return nil
}

func (ed *Editor) ClearSelection() error {
	if !ed.hasSel {
		return nil
	}
	if err := ed.setOutlined(ed.selected, false); err != nil {
		return err
	}
	ed.hasSel = false
	return nil
}

func (ed *Editor) setOutlined(e tableau.Entity, outlined bool) error {
	if !tableau.HasComponent[tableau.Rendering](ed.scene, e) {
		return nil
	}
	rendering, err := tableau.GetComponent[tableau.Rendering](ed.scene, e)
	if err != nil {
		return err
	}
	rendering.Outlined = outlined
	return nil
}

// DeleteSelected removes the selected entity from the scene.
func (ed *Editor) DeleteSelected() error {
	if !ed.hasSel {
		return nil
	}
	e := ed.selected
	// Clear first: the entity's Rendering may be shared with a survivor
	if err := ed.ClearSelection(); err != nil {
		return err
	}
	if err := ed.scene.RemoveEntity(e); err != nil {
		return fmt.Errorf("failed to delete entity %d: %w", e, err)
	}
	ed.log.Info("entity deleted", zap.Int("entity", int(e)))
	return nil
}

// Components lists the component names of the selection.
func (ed *Editor) Components() []string {
	if !ed.hasSel {
		return nil
	}
	return ed.scene.ComponentNames(ed.selected)
}

// Attach adds a default component of kind to the selection.
func (ed *Editor) Attach(kind ComponentKind) error {
	if !ed.hasSel {
		return fmt.Errorf("cannot attach %s: nothing selected", kind)
	}
	e := ed.selected
	var err error
	switch kind {
	case KindRendering:
		rendering := tableau.NewRendering()
		rendering.Outlined = true
		err = tableau.AddComponent(ed.scene, e, rendering)
	case KindTransform:
		err = tableau.AddComponent(ed.scene, e, tableau.NewTransform())
	case KindTexture:
		err = tableau.AddComponent(ed.scene, e, tableau.Texture{})
	case KindLight:
		err = tableau.AddComponent(ed.scene, e, tableau.NewLight(tableau.PointLight))
	case KindSkybox:
		err = tableau.AddComponent(ed.scene, e, tableau.NewSkybox(tableau.CacheLocation{}))
	default:
		err = fmt.Errorf("unknown component kind %s", kind)
	}
	if err != nil {
		return err
	}
	ed.log.Debug("component attached", zap.Int("entity", int(e)), zap.Stringer("kind", kind))
	return nil
}

// Detach removes the component of kind from the selection.
func (ed *Editor) Detach(kind ComponentKind) error {
	if !ed.hasSel {
		return fmt.Errorf("cannot detach %s: nothing selected", kind)
	}
	e := ed.selected
	switch kind {
	case KindRendering:
		return tableau.RemoveComponent[tableau.Rendering](ed.scene, e)
	case KindTransform:
		return tableau.RemoveComponent[tableau.Transform](ed.scene, e)
	case KindTexture:
		return tableau.RemoveComponent[tableau.Texture](ed.scene, e)
	case KindLight:
		return tableau.RemoveComponent[tableau.Light](ed.scene, e)
	case KindSkybox:
		return tableau.RemoveComponent[tableau.Skybox](ed.scene, e)
	}
	return fmt.Errorf("unknown component kind %s", kind)
}

// Populate builds the default scene: a sphere, a textured box, two lights
// sharing one rendering component and a skybox.
func (ed *Editor) Populate() error {
	s := ed.scene

	sphereMesh, err := ed.meshes.Register("sphere", tableau.Mesh{Name: "sphere", Vertices: 2145, Indices: 12288})
	if err != nil {
		return err
	}
	cubeMesh, err := ed.meshes.Register("cube", tableau.Mesh{Name: "cube", Vertices: 24, Indices: 36})
	if err != nil {
		return err
	}
	diffuse, err := ed.images.Register("box_diffuse", tableau.Image{Name: "box_diffuse", Path: "textures/box_diffuse.png"})
	if err != nil {
		return err
	}
	specular, err := ed.images.Register("box_specular", tableau.Image{Name: "box_specular", Path: "textures/box_specular.png"})
	if err != nil {
		return err
	}
	sky, err := ed.images.Register("skybox", tableau.Image{Name: "skybox", Path: "textures/skybox"})
	if err != nil {
		return err
	}

	sphere, err := s.AddEntity("Sphere model")
	if err != nil {
		return err
	}
	rendering := tableau.NewRendering()
	rendering.Mesh = sphereMesh
	rendering.Material = tableau.Metal
	if err := tableau.AddComponent(s, sphere, rendering); err != nil {
		return err
	}
	if err := ed.transform(sphere, func(t *tableau.Transform) {
		t.Scale(math32.Vec3(2, 2, 2))
	}); err != nil {
		return err
	}

	box, err := s.AddEntity("Wooden box")
	if err != nil {
		return err
	}
	rendering = tableau.NewRendering()
	rendering.Mesh = cubeMesh
	rendering.Material = tableau.Fabric
	if err := tableau.AddComponent(s, box, rendering); err != nil {
		return err
	}
	if err := tableau.AddComponent(s, box, tableau.Texture{Diffuse: diffuse, Specular: specular}); err != nil {
		return err
	}
	if err := ed.transform(box, func(t *tableau.Transform) {
		t.Translate(math32.Vec3(3, 0, 0))
	}); err != nil {
		return err
	}

	light1, err := s.AddEntity("Light1")
	if err != nil {
		return err
	}
	rendering = tableau.NewRendering()
	rendering.Mesh = sphereMesh
	rendering.Lightened = false
	rendering.Color = math32.Vec4(1, 1, 1, 1)
	if err := tableau.AddComponent(s, light1, rendering); err != nil {
		return err
	}
	if err := tableau.AddComponent(s, light1, tableau.NewLight(tableau.PointLight)); err != nil {
		return err
	}
	if err := ed.transform(light1, func(t *tableau.Transform) {
		t.Translate(math32.Vec3(-3, 3, 0))
		t.Scale(math32.Vec3(0.2, 0.2, 0.2))
	}); err != nil {
		return err
	}

	light2, err := s.AddEntity("Light2")
	if err != nil {
		return err
	}
	if err := tableau.ShareComponent[tableau.Rendering](s, light1, light2); err != nil {
		return err
	}
	if err := tableau.AddComponent(s, light2, tableau.NewLight(tableau.PointLight)); err != nil {
		return err
	}
	if err := ed.transform(light2, func(t *tableau.Transform) {
		t.Translate(math32.Vec3(3, 3, 3))
		t.Scale(math32.Vec3(0.2, 0.2, 0.2))
	}); err != nil {
		return err
	}

	skybox, err := s.AddEntity("skybox")
	if err != nil {
		return err
	}
	if err := tableau.AddComponent(s, skybox, tableau.NewSkybox(sky)); err != nil {
		return err
	}

	ed.log.Info("scene populated", zap.Int("entities", s.Len()))
	return nil
}

func (ed *Editor) transform(e tableau.Entity, fn func(*tableau.Transform)) error {
	t, err := tableau.GetComponent[tableau.Transform](ed.scene, e)
	if err != nil {
		return err
	}
	fn(t)
	return nil
}
