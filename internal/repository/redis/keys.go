package redisrepo

import "fmt"

const ns = "parkgo:v1"

func KeyLot(lotID int64) string {
	return fmt.Sprintf("%s:lot:%d", ns, lotID)
}

func KeyLotAvailability() string {
	return ns + ":lots:availability"
}

// KeyIdemTicket scopes a client idempotency key to the calling user.
func KeyIdemTicket(userID int64, idemKey string) string {
	return fmt.Sprintf("%s:idem:tickets:%d:%s", ns, userID, idemKey)
}

func ChannelLotsChanged() string {
	return ns + ":lots:changed"
}
