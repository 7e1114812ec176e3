package services

import (
	"log"

	"github.com/Sishir120/PackYourBags-sub000/config"
	"github.com/Sishir120/PackYourBags-sub000/utils"
)

// NotifyService wraps the OneSignal push API. Delivery is log-only until real
// credentials are wired into production.
type NotifyService struct {
	appID  string
	apiKey string
}

func NewNotifyService(cfg *config.Config) *NotifyService {
	return &NotifyService{
		appID:  cfg.OneSignalAppID,
		apiKey: cfg.OneSignalAPIKey,
	}
}

// PushToUser sends a push notification, rate limited per user via redis.
// Returns false when the limiter suppressed it.
func (n *NotifyService) PushToUser(userID uint, title, message string) bool {
	rdb := utils.GetRedis()
	if rdb != nil {
		if ok, reason := utils.CanSendPush(rdb, userID); !ok {
			log.Printf("push to user %d suppressed: %s", userID, reason)
			return false
		}
	}

	// TODO: call the OneSignal create-notification endpoint once the app id
	// is provisioned; logging keeps the integration observable meanwhile
	log.Printf("[push] user=%d app=%s title=%q message=%q", userID, n.appID, title, message)

	if rdb != nil {
		utils.MarkPushSent(rdb, userID)
	}
	return true
}
