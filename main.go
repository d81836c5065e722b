package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"printfeed/alerts"
	"printfeed/clients/discord"
	"printfeed/clients/printer"
	"printfeed/config"
	"printfeed/handlers"
	"printfeed/models"
	"printfeed/usecases/notifications"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	alerts.Init(cfg.AlertWebhookURL)

	// Create a new Discord session using the provided bot token
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatalf("❌ Failed to create Discord session: %v", err)
	}

	discordClient := discord.NewDiscordClient(session)
	printerClient := printer.NewPrinterClient(cfg.PrinterConfig.Addr, cfg.PrinterConfig.Width)

	notificationsUseCase := notifications.NewNotificationsUseCase(
		discordClient,
		printerClient,
		models.SelfIdentity{UserID: cfg.TargetUserID},
		cfg.PrinterConfig.Width,
	)

	handler := handlers.NewDiscordEventsHandler(session, cfg.TargetUserID, notificationsUseCase)

	if err := handler.StartBot(); err != nil {
		log.Fatalf("❌ Failed to open Discord connection: %v", err)
	}

	log.Printf("✅ Watching notifications for user %s - printing to %s", cfg.TargetUserID, cfg.PrinterConfig.Addr)

	// Wait here until CTRL-C or other term signal is received
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	handler.StopBot()
}
