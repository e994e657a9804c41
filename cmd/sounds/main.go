package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"

	"github.com/aisha947/amazon-q-game-challenge/internal/audio"
)

func main() {
	dir := flag.String("dir", "sounds", "output directory for the WAV files")
	flag.Parse()

	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{Prefix: "catch-sounds"}))

	paths, err := audio.ExportWAVs(*dir)
	for _, p := range paths {
		log.Info("wrote sound", "path", p)
	}
	if err != nil {
		log.Fatal("export failed", "err", err)
	}
}
