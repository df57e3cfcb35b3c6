// meshtool is a CLI utility for inspecting the procedural meshes the viewer
// draws. It needs no GPU.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/orrery/pkg/math"
	"github.com/Faultbox/orrery/pkg/mesh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, out io.Writer) error {
	switch command {
	case "sphere":
		return cmdSphere(args, out)
	case "circle":
		return cmdCircle(args, out)
	case "export", "obj":
		return cmdExport(args, out)
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `meshtool - procedural mesh inspector

Usage:
  meshtool <command> [options]

Commands:
  sphere [-p precision]                        Show UV-sphere statistics
  circle [-r radius] [-n segments]             Show orbit ring statistics
  export [-o file] <sphere|circle|cube> ...    Write a mesh as Wavefront OBJ

Examples:
  meshtool sphere -p 96
  meshtool circle -r 100 -n 3000
  meshtool export -o sphere.obj sphere -p 16`)
}

func cmdSphere(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("sphere", flag.ContinueOnError)
	precision := fs.Int("p", 96, "Stacks and slices")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := mesh.Sphere(mesh.SphereParams{Precision: *precision})
	if err != nil {
		return err
	}
	printStats(out, "sphere", m)
	return nil
}

func cmdCircle(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("circle", flag.ContinueOnError)
	radius := fs.Float64("r", 100, "Radius (negative mirrors the ring)")
	segments := fs.Int("n", 3000, "Segment count")
	if err := fs.Parse(args); err != nil {
		return err
	}

	m, err := mesh.Circle(mesh.CircleParams{Radius: float32(*radius), Segments: *segments, Color: math.Vec3{X: 1, Y: 1, Z: 1}})
	if err != nil {
		return err
	}
	printStats(out, "circle", m)
	return nil
}

func cmdExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	output := fs.String("o", "", "Output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: meshtool export [-o file] <sphere|circle|cube> [options]")
	}

	kind := fs.Arg(0)
	var m *mesh.Mesh
	switch kind {
	case "sphere":
		sub := flag.NewFlagSet("sphere", flag.ContinueOnError)
		precision := sub.Int("p", 16, "Stacks and slices")
		if err := sub.Parse(fs.Args()[1:]); err != nil {
			return err
		}
		var err error
		if m, err = mesh.Sphere(mesh.SphereParams{Precision: *precision}); err != nil {
			return err
		}
	case "circle":
		sub := flag.NewFlagSet("circle", flag.ContinueOnError)
		radius := sub.Float64("r", 1, "Radius")
		segments := sub.Int("n", 64, "Segment count")
		if err := sub.Parse(fs.Args()[1:]); err != nil {
			return err
		}
		var err error
		if m, err = mesh.Circle(mesh.CircleParams{Radius: float32(*radius), Segments: *segments}); err != nil {
			return err
		}
	case "cube":
		m = mesh.Cube()
	default:
		return fmt.Errorf("unknown mesh kind: %s", kind)
	}

	if *output == "" {
		return mesh.WriteOBJ(out, m, kind)
	}

	f, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := mesh.WriteOBJ(f, m, kind); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s (%d vertices) to %s\n", kind, m.VertexCount(), *output)
	return nil
}

func printStats(out io.Writer, kind string, m *mesh.Mesh) {
	lo, hi := m.Bounds()
	fmt.Fprintf(out, "Mesh:      %s (%s)\n", kind, m.Topology)
	fmt.Fprintf(out, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(out, "Indices:   %d\n", m.IndexCount())
	fmt.Fprintf(out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(out, "Bounds:    (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n", lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	// Interleaved position, normal, texcoord floats as uploaded.
	fmt.Fprintf(out, "GPU bytes: %d\n", m.VertexCount()*8*4+m.IndexCount()*4)
}
