// Package main is the terminal frontend for place news search.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/samber/lo"

	"github.com/mochizou/placenews/internal/feed"
	"github.com/mochizou/placenews/internal/logger"
	"github.com/mochizou/placenews/internal/models"
	"github.com/mochizou/placenews/internal/query"
	"github.com/mochizou/placenews/internal/ui"
)

var opts struct {
	Rows  int  `short:"n" long:"rows" default:"20" description:"number of articles to show (10-50)"`
	Table bool `short:"t" long:"table" description:"render the results as an aligned table"`
	JSON  bool `long:"json" description:"print the result as JSON instead of styled output"`
	Debug bool `long:"dbg" description:"turn on debug logging"`

	Args struct {
		Place string `positional-arg-name:"PLACE" description:"station or place name, e.g. 渋谷駅"`
	} `positional-args:"yes"`
}

func main() {
	p := flags.NewParser(&opts, flags.Default)
	remaining, err := p.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	setupLog()

	// unquoted multi-word places are joined back together
	place := strings.TrimSpace(strings.Join(append([]string{opts.Args.Place}, remaining...), " "))
	if place == "" {
		fmt.Fprintln(os.Stderr, ui.Warning("駅名・地名を入力してください。"))
		os.Exit(1)
	}
	if opts.Rows < models.MinRows || opts.Rows > models.MaxRows {
		fmt.Fprintln(os.Stderr, ui.Warning("表示件数は10〜50で指定してください。"))
		os.Exit(1)
	}

	if err := run(place); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("ニュースの取得に失敗しました: "+err.Error()))
		os.Exit(1)
	}
}

func run(place string) error {
	q := query.Build(place)

	articles, err := feed.NewProcessor().Retrieve(context.Background(), q.URL)
	if err != nil {
		return err
	}

	articles = lo.Slice(articles, 0, opts.Rows)

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(models.SearchResponse{
			Place:      place,
			Query:      q.Expression,
			RequestURL: q.URL,
			Count:      len(articles),
			Articles:   articles,
		})
	}

	fmt.Println(ui.Header(place, len(articles)))
	fmt.Println()

	switch {
	case len(articles) == 0:
		fmt.Println(ui.Notice("関連ニュースが見つかりませんでした。地名を広域（区/市/県）にするなどお試しください。"))
	case opts.Table:
		fmt.Println(ui.Table(articles))
	default:
		fmt.Println(ui.Cards(articles))
	}

	fmt.Println(ui.RequestURL(q.URL))
	return nil
}

func setupLog() {
	level := "warn"
	if opts.Debug {
		level = "debug"
	}

	// results go to stdout, logs stay on stderr
	if err := logger.Init(logger.Config{Level: level, Output: "stderr", Pretty: true}); err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
}
