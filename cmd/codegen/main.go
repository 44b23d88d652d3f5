package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/streamparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	liftCountKey = "count"
	outKey       = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the LiftN signal combinators",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  liftCountKey,
				Usage: "Highest lift arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file",
				Value: "frp/lift.go",
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
	log.Printf("Codegen for lift combinators started")
	defer func() {
		log.Printf("Codegen for lift combinators finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(liftCountKey))
	out := cmd.String(outKey)

	contents := templates.LiftGen(count)
	return os.WriteFile(out, []byte(contents), 0644)
}
