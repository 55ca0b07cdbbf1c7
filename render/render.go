// Package render turns a scene into the per-frame draw lists consumed by a
// graphics backend. It only reads the scene.
package render

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/TheBitDrifter/tableau"
)

// MaxLights is the number of light sources the shading pass accepts.
const MaxLights = 32

type Options struct {
	// Meshes resolves Rendering.Mesh. Without it DrawCommand.Mesh stays nil.
	Meshes tableau.Cache[tableau.Mesh]
	// HDR scales the color of unlit light entities by their strength.
	HDR bool
}

type DrawCommand struct {
	Entity    tableau.Entity
	Mesh      *tableau.Mesh
	Color     math32.Vector4
	Model     math32.Matrix4
	Material  tableau.Material
	Wireframe bool
	Culled    bool
	Texture   *tableau.Texture
}

// LightCommand is one entry of the shading pass light array. Direction,
// attenuation and Cutoff are derived from the light type; Cutoff is the cosine
// of the cone half angle, -1 for point lights and above 1 for directional ones.
type LightCommand struct {
	Entity     tableau.Entity
	Type       tableau.LightType
	Position   math32.Vector3
	Color      math32.Vector3
	Strength   float32
	ConeCutoff float32

	Direction math32.Vector3
	Constant  float32
	Linear    float32
	Quadratic float32
	Cutoff    float32
}

type Frame struct {
	Lights    []LightCommand
	Skybox    *tableau.Skybox
	Lightened []DrawCommand
	Colored   []DrawCommand
	Outlined  []DrawCommand
}

// Len returns the number of draw calls in the frame, outlines excluded.
func (f Frame) Len() int {
	return len(f.Lightened) + len(f.Colored)
}

// BuildFrame collects lights, the skybox and every drawable of scene.
func BuildFrame(scene *tableau.Scene, opts Options) (Frame, error) {
	var frame Frame

	lights, err := collectLights(scene)
	if err != nil {
		return Frame{}, err
	}
	frame.Lights = lights

	if skyboxes := tableau.ComponentEntities[tableau.Skybox](scene); len(skyboxes) > 0 {
		skybox, err := tableau.GetComponent[tableau.Skybox](scene, skyboxes[0])
		if err != nil {
			return Frame{}, err
		}
		sb := *skybox
		frame.Skybox = &sb
	}

	for _, e := range tableau.ComponentEntities[tableau.Rendering](scene) {
		cmd, lightened, outlined, err := drawCommand(scene, e, opts)
		if err != nil {
			return Frame{}, err
		}
		if lightened {
			frame.Lightened = append(frame.Lightened, cmd)
		} else {
			frame.Colored = append(frame.Colored, cmd)
		}
		if outlined {
			frame.Outlined = append(frame.Outlined, cmd)
		}
	}
	return frame, nil
}

func collectLights(scene *tableau.Scene) ([]LightCommand, error) {
	entities := tableau.ComponentEntities[tableau.Light](scene)
	if len(entities) > MaxLights {
		return nil, fmt.Errorf("scene has %d lights, at most %d are supported", len(entities), MaxLights)
	}

	lights := make([]LightCommand, 0, len(entities))
	for _, e := range entities {
		light, err := tableau.GetComponent[tableau.Light](scene, e)
		if err != nil {
			return nil, err
		}
		transform, err := tableau.GetComponent[tableau.Transform](scene, e)
		if err != nil {
			return nil, fmt.Errorf("light entity %d cannot be placed: %w", e, err)
		}
		cmd := LightCommand{
			Entity:     e,
			Type:       light.Type,
			Position:   transform.Translation,
			Color:      light.Color,
			Strength:   light.Strength,
			ConeCutoff: light.ConeCutoff,
		}
		shadeLight(&cmd, transform)
		lights = append(lights, cmd)
	}
	return lights, nil
}

// down is the direction directional and unrotated cone lights shine in.
var down = math32.Vec3(0, -1, 0)

func shadeLight(cmd *LightCommand, transform *tableau.Transform) {
	switch cmd.Type {
	case tableau.PointLight:
		cmd.Constant, cmd.Linear, cmd.Quadratic = 1.1, 0.024, 0.0021
		cmd.Cutoff = -1
	case tableau.DirectionalLight:
		cmd.Direction = down
		cmd.Cutoff = 1.1
	case tableau.ConeLight:
		rotation := transform.RotationMatrix()
		cmd.Direction = down.MulMatrix4AsVector4(&rotation, 0)
		cmd.Constant, cmd.Linear, cmd.Quadratic = 1, 0.045, 0.0075
		cmd.Cutoff = math32.Cos(math32.DegToRad(cmd.ConeCutoff))
	}
}

func drawCommand(scene *tableau.Scene, e tableau.Entity, opts Options) (cmd DrawCommand, lightened, outlined bool, err error) {
	rendering, err := tableau.GetComponent[tableau.Rendering](scene, e)
	if err != nil {
		return DrawCommand{}, false, false, err
	}
	transform, err := tableau.GetComponent[tableau.Transform](scene, e)
	if err != nil {
		return DrawCommand{}, false, false, err
	}

	cmd = DrawCommand{
		Entity:    e,
		Color:     rendering.Color,
		Model:     transform.Matrix(),
		Material:  rendering.Material,
		Wireframe: rendering.Wireframe,
		Culled:    rendering.Culled,
	}
	if opts.Meshes != nil {
		if mesh, ok := opts.Meshes.Lookup(rendering.Mesh); ok {
			cmd.Mesh = mesh
		}
	}

	if rendering.Lightened {
		if tableau.HasComponent[tableau.Texture](scene, e) {
			texture, err := tableau.GetComponent[tableau.Texture](scene, e)
			if err != nil {
				return DrawCommand{}, false, false, err
			}
			tx := *texture
			cmd.Texture = &tx
		}
	} else if opts.HDR && tableau.HasComponent[tableau.Light](scene, e) {
		light, err := tableau.GetComponent[tableau.Light](scene, e)
		if err != nil {
			return DrawCommand{}, false, false, err
		}
		cmd.Color = cmd.Color.MulScalar(light.Strength)
	}
	return cmd, rendering.Lightened, rendering.Outlined, nil
}
