package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"volcano/internal/app"
	"volcano/internal/export"
	"volcano/internal/terrain"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	out := flag.String("out", "out", "directory to write the export into")
	count := flag.Int("count", 1, "number of consecutive seeds to export, one subdirectory each")
	verbose := flag.Bool("v", false, "log stage transitions")
	origin := flag.String("origin", "0,0,0", "world position of the terrain origin as x,y,z")
	yaw := flag.Float64("yaw", 0, "terrain yaw in degrees")
	var overrides app.KVList
	flag.Var(&overrides, "set", "terrain parameter override in key=value form (repeatable)")
	flag.Parse()

	cfg := terrain.FromMap(overrides.Map())
	pos, err := parseVec3(*origin)
	if err != nil {
		log.Fatalf("-origin: %v", err)
	}
	fsys := osfs.New(*out)

	for i := 0; i < *count; i++ {
		run := cfg
		run.Seed = cfg.Seed + int64(i)
		g, err := terrain.NewWithConfig(run)
		if err != nil {
			log.Fatalf("terrain: %v", err)
		}
		if *verbose {
			g.SetLogger(log.Default())
		}
		g.SetPosition(pos)
		g.SetRotation(mgl32.Vec3{0, mgl32.DegToRad(float32(*yaw)), 0})
		g.AutoComplete()

		dir := "."
		if *count > 1 {
			dir = fmt.Sprintf("seed-%d", run.Seed)
		}
		if err := export.Write(fsys, dir, g); err != nil {
			log.Fatalf("export seed %d: %v", run.Seed, err)
		}
		fmt.Printf("seed %d: %s (%s)\n", run.Seed, filepath.Join(*out, dir), g.Status())
	}
}

func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl32.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
