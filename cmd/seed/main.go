package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"bizchat-be/internal/entity"
	"bizchat-be/internal/mapper"
	"bizchat-be/pkg/database"
	"bizchat-be/pkg/scheduling"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Interactive demo-tenant creation. Prompts for the business profile,
// its services and weekly hours, then prints the widget embed snippet.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	reader := bufio.NewReader(os.Stdin)
	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Println(cyan("📣 Creating a new business chatbot...\n"))

	name := promptLine(reader, "Business Name: ")
	description := promptLine(reader, "Business Description: ")
	industry := promptLine(reader, "Industry (e.g., dental, restaurant, salon): ")
	location := promptLine(reader, "Business Location: ")
	website := promptLine(reader, "Business Website (optional): ")
	serviceNames := promptList(reader, "Services offered")

	tenant := entity.Tenant{
		Id:          uuid.New(),
		ChatbotKey:  fmt.Sprintf("chatbot_%s", strings.Split(uuid.NewString(), "-")[0]),
		Name:        name,
		Industry:    industry,
		Description: description,
		Location:    location,
		Website:     website,
		AISettings: &entity.AISettings{
			Personality:    "friendly",
			KnowledgeFocus: "balanced",
		},
		CreatedAt: time.Now(),
	}

	tenantMapper := mapper.NewTenantMapper()

	err = db.Transaction(func(tx *gorm.DB) error {
		tenantModel := tenantMapper.ToModel(&tenant)
		if err := tx.Create(tenantModel).Error; err != nil {
			return err
		}

		for _, svcName := range serviceNames {
			svc := entity.Service{
				Id:              uuid.New(),
				TenantId:        tenant.Id,
				Name:            svcName,
				DurationMinutes: scheduling.DefaultDurationMinutes,
			}
			if err := tx.Create(tenantMapper.ServiceToModel(&svc)).Error; err != nil {
				return err
			}
		}

		// Mon-Fri 9:00-17:00 by default, weekend closed.
		for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
			hours := entity.BusinessHours{
				Id:       uuid.New(),
				TenantId: tenant.Id,
				Weekday:  weekday,
				Closed:   weekday == time.Sunday || weekday == time.Saturday,
			}
			if !hours.Closed {
				hours.OpenMinute = 9 * 60
				hours.CloseMinute = 17 * 60
			}
			if err := tx.Create(tenantMapper.HoursToModel(&hours)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error: Failed to create business: %v", err)
	}

	fmt.Println(green("\n✅ Business created successfully!"))
	fmt.Printf("\n%s %s\n", yellow("CHATBOT KEY:"), tenant.ChatbotKey)
	fmt.Println("\nUse this key to identify your chatbot when uploading documents or embedding on your website.")
	fmt.Println("\nEmbed code:")
	fmt.Printf(`
  <script src="%s/widget/chatbot.js"></script>
  <script>
    window.initializeChatWidget({
      chatbotKey: "%s",
      theme: "light",
      position: "right",
      businessName: "%s",
      welcomeMessage: "Hi there! How can I help you today?"
    });
  </script>
`, baseURL(), tenant.ChatbotKey, tenant.Name)
}

func baseURL() string {
	if url := os.Getenv("APP_BASE_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

func promptLine(reader *bufio.Reader, question string) string {
	fmt.Print(question)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptList(reader *bufio.Reader, question string) []string {
	raw := promptLine(reader, question+" (comma separated): ")
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
