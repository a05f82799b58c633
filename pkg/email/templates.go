package email

import "fmt"

// ReconnectNoticeData carries what the calendar-reconnect email needs.
type ReconnectNoticeData struct {
	FirstName    string
	Email        string
	AccountEmail string // the provider account that stopped syncing
	SettingsURL  string
	AppName      string
}

// BuildCalendarReconnectEmail tells a staff member their external calendar
// stopped syncing and asks them to reconnect it.
func BuildCalendarReconnectEmail(data ReconnectNoticeData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "Juniper"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("%s: your calendar connection needs attention", appName)

	textBody := fmt.Sprintf(`Hi %s,

We can no longer sync your external calendar (%s). Busy times from that
calendar will not appear on your %s schedule until you reconnect it.

Reconnect here:
%s

Thanks,
The %s Team`,
		firstName, data.AccountEmail, appName, data.SettingsURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>We can no longer sync your external calendar (<strong>%s</strong>).</p>
    <p>Busy times from that calendar will not appear on your %s schedule until you reconnect it.</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s" style="background-color: #2563eb; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Reconnect Calendar</a>
    </p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.AccountEmail, appName, data.SettingsURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
