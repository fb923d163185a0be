package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret        string
	JWTRefreshSecret string

	// Outbound channel credentials. An empty value disables the channel;
	// launching a campaign on a disabled channel fails its deliveries.
	SendGridAPIKey    string
	SMTPHost          string
	SMTPPort          string
	SMTPUser          string
	SMTPPassword      string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
	WhatsAppToken     string
	WhatsAppPhoneID   string
	WhatsAppVerifyTkn string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	PublicBaseURL     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")

	SendGridAPIKey = GetEnv("SENDGRID_API_KEY")
	SMTPHost = GetEnv("SMTP_HOST")
	SMTPPort = GetEnv("SMTP_PORT", "587")
	SMTPUser = GetEnv("SMTP_USER")
	SMTPPassword = GetEnv("SMTP_PASSWORD")
	TwilioAccountSID = GetEnv("TWILIO_ACCOUNT_SID")
	TwilioAuthToken = GetEnv("TWILIO_AUTH_TOKEN")
	TwilioFromNumber = GetEnv("TWILIO_FROM_NUMBER")
	WhatsAppToken = GetEnv("WHATSAPP_ACCESS_TOKEN")
	WhatsAppPhoneID = GetEnv("WHATSAPP_PHONE_NUMBER_ID")
	WhatsAppVerifyTkn = GetEnv("WHATSAPP_VERIFY_TOKEN")
	OpenAIAPIKey = GetEnv("OPENAI_API_KEY")
	OpenAIBaseURL = GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")
	PublicBaseURL = GetEnv("PUBLIC_BASE_URL", "http://localhost:3000")

	if JWTSecret == "" {
		log.Println("[ERROR] JWT_SECRET is not set")
	}
	if JWTRefreshSecret == "" {
		log.Println("[ERROR] JWT_REFRESH_SECRET is not set")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
