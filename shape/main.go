package main

import (
	"embed"
	"os"
	"runtime"

	"hw01/app"
	"hw01/config"
)

//go:embed *.glsl
var shaders embed.FS

func init() {
	runtime.LockOSThread()
}

func defaultConfig() config.Config {
	cfg := config.Default()
	cfg.Window.Title = "Shape"
	cfg.Camera.Frequency = 0.1
	cfg.Camera.Radius = 5
	return cfg
}

func main() {
	p := app.Program{
		Scene:   &scene,
		Config:  defaultConfig(),
		Shaders: shaders,
	}
	os.Exit(p.Main(os.Args[1:]))
}
