// Command tableau builds the editor's default scene and prints the frame the
// renderer would draw from it.
//
// Profiling:
// go build ./cmd/tableau
// ./tableau -profile mem -frames 10000
// go tool pprof -http=":8000" ./tableau mem.pprof
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TheBitDrifter/tableau"
	"github.com/TheBitDrifter/tableau/editor"
	"github.com/TheBitDrifter/tableau/render"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	frames := flag.Int("frames", 1, "number of frames to build")
	hdr := flag.Bool("hdr", false, "scale light colors by their strength")
	flag.Parse()

	if err := run(*configPath, *profileMode, *frames, *hdr); err != nil {
		fmt.Fprintln(os.Stderr, "tableau:", err)
		os.Exit(1)
	}
}

func run(configPath, profileMode string, frames int, hdr bool) error {
	if configPath != "" {
		fc, err := tableau.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := fc.Apply(); err != nil {
			return err
		}
	}
	defer tableau.Config.Logger().Sync()

	switch profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", profileMode)
	}

	meshes := tableau.FactoryNewCache[tableau.Mesh](64)
	images := tableau.FactoryNewCache[tableau.Image](64)
	scene := tableau.Factory.NewScene()
	ed := editor.New(scene, meshes, images)
	if err := ed.Populate(); err != nil {
		return fmt.Errorf("failed to populate scene: %w", err)
	}

	graph, err := ed.SceneGraph()
	if err != nil {
		return err
	}
	fmt.Printf("scene %s\n", scene.ID())
	for _, node := range graph {
		fmt.Printf("  #%d %-14s %v\n", node.Entity, node.Name, scene.ComponentNames(node.Entity))
	}

	var frame render.Frame
	for range max(frames, 1) {
		frame, err = render.BuildFrame(scene, render.Options{Meshes: meshes, HDR: hdr})
		if err != nil {
			return fmt.Errorf("failed to build frame: %w", err)
		}
	}

	fmt.Printf("lights: %d\n", len(frame.Lights))
	for _, light := range frame.Lights {
		fmt.Printf("  #%d %s at %v dir %v strength %g cutoff %g\n", light.Entity, light.Type, light.Position, light.Direction, light.Strength, light.Cutoff)
	}
	fmt.Printf("draw calls: %d (lightened %d, colored %d, outlined %d)\n",
		frame.Len(), len(frame.Lightened), len(frame.Colored), len(frame.Outlined))
	for _, cmd := range append(frame.Lightened, frame.Colored...) {
		mesh := "<none>"
		if cmd.Mesh != nil {
			mesh = cmd.Mesh.Name
		}
		fmt.Printf("  #%d mesh=%s material=%s textured=%t\n", cmd.Entity, mesh, cmd.Material, cmd.Texture != nil)
	}
	if frame.Skybox != nil {
		fmt.Printf("skybox: %s\n", frame.Skybox.Texture.Key)
	}
	return nil
}
