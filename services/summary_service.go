package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/zefilho/snack-pos/config"
)

// SummaryService texts the owner the day's sales figures at closing time.
// It stays dormant when the Twilio settings are absent.
type SummaryService struct {
	cfg    *config.Config
	sales  *SalesService
	client *twilio.RestClient
	cron   *cron.Cron
}

func NewSummaryService(cfg *config.Config, sales *SalesService) *SummaryService {
	return &SummaryService{
		cfg:   cfg,
		sales: sales,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
	}
}

// StartScheduler arms the daily cron job.
func (s *SummaryService) StartScheduler() {
	if !s.cfg.SummaryEnabled() {
		log.Println("Daily summary disabled: Twilio settings not configured")
		return
	}

	c := cron.New()
	if _, err := c.AddFunc(s.cfg.SummarySchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.RequestTimeout)
		defer cancel()
		s.SendDailySummary(ctx)
	}); err != nil {
		log.Printf("Invalid summary schedule %q: %v", s.cfg.SummarySchedule, err)
		return
	}
	c.Start()
	s.cron = c
	log.Println("Daily summary scheduler started")
}

// Stop halts the scheduler, letting a running job finish.
func (s *SummaryService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// SendDailySummary fetches today's figures from the store and sends them to
// the configured phone, preferring WhatsApp when the number is in E.164
// format and a WhatsApp sender is configured.
func (s *SummaryService) SendDailySummary(ctx context.Context) {
	stats, err := s.sales.DailyStats(ctx)
	if err != nil {
		log.Printf("Failed to fetch daily stats for summary: %v", err)
		return
	}

	message := fmt.Sprintf(
		"Resumo do dia %s: R$ %.2f em %d pedido(s), ticket médio R$ %.2f",
		stats.Date, stats.TotalRevenue, stats.TotalOrders, stats.AverageOrderValue,
	)

	to := s.cfg.SummaryPhone
	channel := "sms"
	if strings.HasPrefix(to, "+") && s.cfg.TwilioWhatsAppNumber != "" {
		to = "whatsapp:" + to
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + s.cfg.TwilioWhatsAppNumber)
	} else {
		params.SetFrom(s.cfg.TwilioPhoneNumber)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send daily summary to %s: %v", s.cfg.SummaryPhone, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Daily summary sent via %s, SID: %s", channel, *resp.Sid)
	} else {
		log.Printf("Daily summary sent via %s, but no SID returned", channel)
	}
}
