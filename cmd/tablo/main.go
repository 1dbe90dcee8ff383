package main

import (
	"context"
	"fmt"
	"os"

	"github.com/clarktrimble/sabot"

	"tablo"
	"tablo/store/duck"
	"tablo/store/mem"
	"tablo/util"
)

const (
	layoutFile = "layout.yaml"
	logFile    = "tablo.log"
)

func main() {

	if len(os.Args) < 2 {
		fmt.Println("usage: tablo <data-file>")
		os.Exit(1)
	}
	path := os.Args[1]

	file := util.OpenLog(logFile, 0644)
	defer util.CloseLog(file)

	lgr := &sabot.Sabot{Writer: file, MaxLen: 999}
	ctx := context.Background()

	dk, err := duck.New(lgr)
	if err != nil {
		fail(err)
	}
	defer dk.Close()

	fields, lines, err := dk.Load(ctx, path)
	if err != nil {
		fail(err)
	}

	src := mem.New(path, fields)
	src.Append(lines...)

	// missing layout falls back to a column per field
	layout, err := tablo.LoadLayout(layoutFile)
	if err != nil {
		lgr.Info(ctx, "no layout, deriving columns", "path", layoutFile)
		layout = nil
	}

	err = tablo.Run(ctx, src, layout, lgr)
	if err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}
