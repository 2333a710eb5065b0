package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/drunkenberger/akiba/client"
)

var (
	server   = flag.String("server", "http://localhost:3000", "Akiba server address")
	apiKey   = flag.String("key", "", "fal.ai API key (default $FAL_KEY)")
	style    = flag.String("style", "", "visual style tag, see /api/styles")
	music    = flag.String("music", "", "music track tag for videos, see /api/music")
	strength = flag.Float64("strength", -1, "style strength between 0 and 1")
	video    = flag.Bool("video", false, "generate an AMV clip instead of an image")
	outDir   = flag.String("out", "", "download the result into this directory")
)

func usage() {
	fmt.Fprintln(flag.CommandLine.Output(), "Usage: akiba [flags] <prompt>")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	prompt := strings.Join(flag.Args(), " ")
	key := *apiKey
	if key == "" {
		key = os.Getenv("FAL_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, prompt, key); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, prompt, key string) error {
	keys := client.NewKeyStore()
	if err := keys.Unlock(key); err != nil {
		return err
	}

	form := client.NewForm(keys, client.NewDispatcher(*server, nil))
	form.SetPrompt(prompt)
	form.SetStyle(*style)
	if *video {
		form.SetKind(client.KindVideo)
		form.SetMusic(*music)
	}
	if *strength >= 0 {
		if err := form.SetStyleStrength(*strength); err != nil {
			return err
		}
	}

	result, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	fmt.Println(result.MediaURL)
	if result.Music != nil {
		fmt.Printf("music: %s - %s (%s)\n", result.Music.Title, result.Music.Artist, result.Music.Preview)
	}

	if *outDir == "" {
		return nil
	}
	path, err := form.Download(ctx, *outDir)
	if err != nil {
		return err
	}
	fmt.Println("saved " + path)
	return nil
}
