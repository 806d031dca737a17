package formatting

import (
	"fmt"
	"time"
)

const (
	MsgCommandError  = "There was an error while executing this command!"
	MsgAdminRequired = "You need Administrator permissions to use this command."
	MsgGuildOnly     = "This command can only be used inside a server."
	MsgEmptyCommand  = "Empty command"
	MsgNoDate        = "No date"
)

// RelativeTimestamp renders t as a Discord relative timestamp, rounded to
// the nearest second.
func RelativeTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", roundUnix(t))
}

func MsgCooldown(command string, expiresAt time.Time) string {
	return fmt.Sprintf(
		"Please wait, you are on a cooldown for `%s`. You can use it again %s.",
		command, RelativeTimestamp(expiresAt),
	)
}

func MsgServerInfo(name, members string) string {
	return fmt.Sprintf("This server is %s and has %s members.", name, members)
}

func MsgUserInfo(username, joined string) string {
	return fmt.Sprintf("This command was run by %s, who joined on %s.", username, joined)
}

func MsgMessageSent(channelName string) string {
	return fmt.Sprintf("Message sent to %s", channelName)
}

func MsgGuideQuery(query, version string) string {
	return fmt.Sprintf("Query: %s, Version: %s", query, version)
}

func roundUnix(t time.Time) int64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return (ms - 500) / 1000
	}
	return (ms + 500) / 1000
}
