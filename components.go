package tableau

import (
	"cogentcore.org/core/math32"
)

// Tag names an entity. Every entity gets one from AddEntity.
type Tag struct {
	Name string
}

type Material int

const (
	Plastic Material = iota
	Metal
	Fabric
)

func (m Material) String() string {
	switch m {
	case Plastic:
		return "plastic"
	case Metal:
		return "metal"
	case Fabric:
		return "fabric"
	}
	return "unknown"
}

// Rendering makes an entity drawable. Attaching it implies a Transform.
type Rendering struct {
	Mesh      CacheLocation
	Color     math32.Vector4
	Culled    bool
	Outlined  bool
	Wireframe bool
	Lightened bool
	Material  Material
}

func NewRendering() Rendering {
	return Rendering{
		Color:     math32.Vec4(0.7, 0.4, 0.2, 1),
		Culled:    true,
		Lightened: true,
	}
}

// Texture binds image maps to a drawable. A zero CacheLocation key means the
// map is unset.
type Texture struct {
	Diffuse          CacheLocation
	Specular         CacheLocation
	Normal           CacheLocation
	SkyboxReflection bool
}

type LightType int

const (
	PointLight LightType = iota
	DirectionalLight
	ConeLight
)

func (t LightType) String() string {
	switch t {
	case PointLight:
		return "point"
	case DirectionalLight:
		return "directional"
	case ConeLight:
		return "cone"
	}
	return "unknown"
}

type Light struct {
	Type       LightType
	Strength   float32
	ConeCutoff float32
	Color      math32.Vector3
}

func NewLight(typ LightType) Light {
	return Light{
		Type:       typ,
		Strength:   1,
		ConeCutoff: 12.5,
		Color:      math32.Vec3(1, 1, 1),
	}
}

type Skybox struct {
	BlurLevel  int
	Brightness int
	Texture    CacheLocation
}

func NewSkybox(texture CacheLocation) Skybox {
	return Skybox{
		BlurLevel:  200,
		Brightness: 1,
		Texture:    texture,
	}
}

// Mesh and Image are asset descriptors. GPU resources are owned by the
// renderer backend; the scene only refers to them through a Cache.
type Mesh struct {
	Name     string
	Vertices int
	Indices  int
}

type Image struct {
	Name string
	Path string
}
