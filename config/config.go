package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type PrinterConfig struct {
	// Addr is the printer's host:port network address
	Addr string
	// Width is the printable character width used for word wrapping
	Width int
}

// IsConfigured returns true if all required printer configuration is present
func (c PrinterConfig) IsConfigured() bool {
	return c.Addr != "" && c.Width > 0
}

type AppConfig struct {
	// Discord configuration (always required)
	DiscordBotToken string
	// TargetUserID is the account whose notifications are printed
	TargetUserID string

	PrinterConfig PrinterConfig

	// AlertWebhookURL receives printer-failure alerts (optional)
	AlertWebhookURL string
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	botToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	targetUserID, err := getEnvRequired("TARGET_USER_ID")
	if err != nil {
		return nil, err
	}

	printerAddr, err := getEnvRequired("PRINTER_ADDR")
	if err != nil {
		return nil, err
	}

	printerWidth, err := strconv.Atoi(getEnvWithDefault("PRINTER_WIDTH", "48"))
	if err != nil || printerWidth <= 0 {
		return nil, fmt.Errorf("PRINTER_WIDTH must be a positive integer")
	}

	config := &AppConfig{
		DiscordBotToken: botToken,
		TargetUserID:    targetUserID,
		PrinterConfig: PrinterConfig{
			Addr:  printerAddr,
			Width: printerWidth,
		},
		AlertWebhookURL: getEnvWithDefault("ALERT_WEBHOOK_URL", ""),
	}

	log.Printf("✅ Printer configured at %s (width %d)", config.PrinterConfig.Addr, config.PrinterConfig.Width)

	if config.AlertWebhookURL != "" {
		log.Printf("✅ Printer-failure alerts configured")
	} else {
		log.Printf("⚠️ ALERT_WEBHOOK_URL not set - printer failures will only be logged")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
