package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/verdant/internal/archetype"
	"github.com/appengine-ltd/verdant/internal/plant"
)

var (
	colorBG     = rl.NewColor(16, 20, 26, 255)
	colorText   = rl.NewColor(200, 230, 205, 255)
	colorDim    = rl.NewColor(120, 150, 128, 255)
	colorWood   = rl.NewColor(110, 82, 58, 255)
	colorStalk  = rl.NewColor(96, 138, 74, 255)
	colorLeaf   = rl.NewColor(70, 150, 70, 255)
	colorPetal  = rl.NewColor(238, 238, 230, 255)
	colorCenter = rl.NewColor(235, 190, 70, 255)
)

func main() {
	var (
		startID string
		seed    int64
	)
	flag.StringVar(&startID, "archetype", "oak", "archetype id to preview")
	flag.Int64Var(&seed, "seed", 0, "generation seed (0 = time-based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	all := archetype.All()
	index := 0
	if _, err := archetype.Find(startID); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for i, a := range all {
		if a.ID == startID {
			index = i
		}
	}

	current, err := plant.Generate(all[index].Config, seed)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1280, 800, "verdant")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(7, 6, 7),
		Target:     rl.NewVector3(0, 3, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		regen := false
		if rl.IsKeyPressed(rl.KeyR) {
			seed++
			regen = true
		}
		if rl.IsKeyPressed(rl.KeyRight) {
			index = (index + 1) % len(all)
			regen = true
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			index = (index - 1 + len(all)) % len(all)
			regen = true
		}
		if regen {
			p, err := plant.Generate(all[index].Config, seed)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				current = p
			}
		}

		rl.UpdateCamera(&camera, rl.CameraOrbital)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		rl.BeginMode3D(camera)
		rl.DrawGrid(12, 1)
		drawPlant(current)
		rl.EndMode3D()

		a := all[index]
		rl.DrawText(fmt.Sprintf("%s  (seed %d)", a.Name, seed), 20, 20, 24, colorText)
		rl.DrawText(fmt.Sprintf("%d branches, %d leaves", len(current.Branches), len(current.Leaves)), 20, 50, 18, colorDim)
		rl.DrawText("left/right: archetype   R: reseed", 20, 76, 18, colorDim)
		for i, w := range current.Warnings {
			rl.DrawText(w, 20, int32(104+22*i), 18, rl.Orange)
		}
		rl.EndDrawing()
	}
	rl.CloseWindow()
}

func drawPlant(p *plant.Plant) {
	for _, b := range p.Branches {
		rl.DrawCylinderEx(b.Start, b.End, b.RadiusStart, b.RadiusEnd, 8, branchColor(b))
	}
	for _, l := range p.Leaves {
		size := float32(0.12)
		if l.Opts != nil && l.Opts.Size > 0 {
			size *= l.Opts.Size
		}
		rl.DrawSphere(l.Position, size, leafColor(l))
	}
}

func branchColor(b *plant.BranchData) rl.Color {
	if b.Kind == "stalk" {
		return colorStalk
	}
	return colorWood
}

func leafColor(l plant.LeafData) rl.Color {
	switch l.Kind {
	case "petal":
		return colorPetal
	case "disc":
		return colorCenter
	default:
		return colorLeaf
	}
}
