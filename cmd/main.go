package main

import (
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"surahbot/internal/bot"
	"surahbot/internal/catalog"
	"surahbot/internal/config"
	"surahbot/internal/media"
	"surahbot/internal/session"
	"surahbot/internal/tags"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatal("bot init: ", err)
	}
	api.Debug = cfg.BotDebug
	log.Printf("Authorized on account %s", api.Self.UserName)

	cat, err := catalog.Load()
	if err != nil {
		log.Fatal("catalog: ", err)
	}

	scratch, err := media.NewScratch(cfg.TempDir)
	if err != nil {
		log.Fatal("temp dir: ", err)
	}

	machine := session.New(session.Deps{
		Fetcher:   media.NewTransfer(api, scratch.Dir()),
		Extractor: media.NewExtractor(),
		Tags:      tags.NewWriter(),
		Publisher: bot.NewGateway(api, cfg.ChannelID),
		Catalog:   cat,
		Scratch:   scratch,
		Dir:       scratch.Dir(),
		Now:       time.Now,
	})

	log.Println("Bot running")
	bot.New(api, machine).Run()
}
