// skintool is a CLI utility for inspecting UI skin files.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Faultbox/midgard-ui/internal/skin"
	"github.com/Faultbox/midgard-ui/internal/ui/style"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "list", "ls":
		cmdList(args)
	case "show":
		cmdShow(args)
	case "check":
		cmdCheck(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`skintool - UI skin utility

Usage:
  skintool <command> [options]

Commands:
  info <skin.yaml>                  Show skin summary
  list <skin.yaml>                  List style names
  show <skin.yaml> <style> [state]  Print resolved styles (all states by default)
  check <skin.yaml>...              Validate skin files

Examples:
  skintool info skins/default.yaml
  skintool show skins/default.yaml button hot
  skintool check skins/*.yaml`)
}

func mustLoad(path string) *skin.Skin {
	sk, err := skin.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return sk
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: skintool info <skin.yaml>")
		os.Exit(1)
	}

	sk := mustLoad(args[0])

	textures := make(map[string]int)
	fonts := make(map[string]int)
	for _, name := range sk.Names() {
		cs, _ := sk.Get(name)
		for _, st := range style.States() {
			s := cs.Get(st)
			if s.HasTexture() {
				textures[s.Texture]++
			}
			fonts[s.Font]++
		}
	}

	fmt.Printf("Skin:     %s\n", sk.Name)
	fmt.Printf("Styles:   %d\n", sk.Len())
	fmt.Printf("Textures: %d distinct\n", len(textures))
	fmt.Printf("Fonts:    %d distinct\n", len(fonts))
}

func cmdList(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: skintool list <skin.yaml>")
		os.Exit(1)
	}

	sk := mustLoad(args[0])
	for _, name := range sk.Names() {
		fmt.Println(name)
	}
}

func cmdShow(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: skintool show <skin.yaml> <style> [state]")
		os.Exit(1)
	}

	sk := mustLoad(args[0])
	cs, ok := sk.Get(args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: style %q not found\n", args[1])
		os.Exit(1)
	}

	states := style.States()
	if len(args) > 2 {
		st, ok := style.ParseControlState(args[2])
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown state %q\n", args[2])
			os.Exit(1)
		}
		states = []style.ControlState{st}
	}

	for _, st := range states {
		fmt.Printf("[%s]\n%s\n", st, describe(cs.Get(st)))
	}
}

func cmdCheck(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: skintool check <skin.yaml>...")
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		sk, err := skin.Load(path)
		if err != nil {
			failed++
			fmt.Printf("FAIL %s\n  %s\n", path, strings.ReplaceAll(err.Error(), "; ", "\n  "))
			continue
		}
		fmt.Printf("ok   %s (%d styles)\n", path, sk.Len())
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// describe renders one style as indented key/value lines.
func describe(s style.Style) string {
	var b strings.Builder
	line := func(k string, v any) {
		fmt.Fprintf(&b, "  %-13s %v\n", k+":", v)
	}
	line("texture", orNone(s.Texture))
	line("texture_rect", s.TextureRect)
	line("tiling", s.Tiling)
	line("grid", s.Grid)
	line("tint", skin.FormatColor(s.Tint))
	line("back_color", skin.FormatColor(s.BackColor))
	line("opacity", s.Opacity)
	line("font", s.Font)
	line("text_color", skin.FormatColor(s.TextColor))
	line("text_align", s.TextAlign)
	line("text_padding", s.TextPadding)
	return strings.TrimRight(b.String(), "\n")
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
