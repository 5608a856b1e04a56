package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/DexerMatters/reactivity/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityKey = "arity"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Regenerate the derive arity grid",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Highest dependency arity to generate",
				Value: 8,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for derive started")
	defer func() {
		log.Printf("Codegen for derive finished in %v", time.Since(start))
	}()

	arity := int(cmd.Uint(arityKey))

	contents := templates.DeriveGen(false, arity)
	if err := os.WriteFile("derive/driven.go", []byte(contents), 0644); err != nil {
		return err
	}

	contents = templates.DeriveGen(true, arity)
	if err := os.WriteFile("derive/driven_sync.go", []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
