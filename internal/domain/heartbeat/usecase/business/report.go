package business

import (
	"fmt"

	"github.com/Conte777/keepalive-service/internal/domain/heartbeat/entities"
)

// Report kinds
const (
	ReportConnected = "Connected to session"
	ReportPingSent  = "Ping Sent"
)

// ReportText formats a status report for the notifier
func ReportText(name, kind string, proxy *entities.ProxyRecord) string {
	return fmt.Sprintf(
		"✅ 🌟 KEEPALIVE BOT 🌟 ✅\n\n👤 Account: %s\n💰 Report: %s\n🛠 Proxy Used: %s",
		name, kind, proxy.Addr(),
	)
}
