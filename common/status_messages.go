// common/status_messages.go

package common

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StatusMessage is one line of the status panel
type StatusMessage struct {
	Severity Severity
	Content  string
}

// StatusMessagesContainer shows the most recent status messages with severity icons
type StatusMessagesContainer struct {
	widget.BaseWidget
	messages    []StatusMessage
	maxMessages int
	rows        *fyne.Container
	scroll      *container.Scroll
}

// NewStatusMessagesContainer creates a panel keeping at most maxMessages lines; older lines drop off.
func NewStatusMessagesContainer(maxMessages int) *StatusMessagesContainer {
	if maxMessages <= 0 {
		maxMessages = 1
	}
	smc := &StatusMessagesContainer{maxMessages: maxMessages}
	smc.ExtendBaseWidget(smc)
	smc.rows = container.NewVBox()
	smc.scroll = container.NewVScroll(smc.rows)
	smc.scroll.SetMinSize(fyne.NewSize(0, 90))
	return smc
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (smc *StatusMessagesContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(smc.scroll)
}

// AddMessage appends a message and scrolls to it
func (smc *StatusMessagesContainer) AddMessage(severity Severity, content string) {
	smc.messages = append(smc.messages, StatusMessage{Severity: severity, Content: content})
	smc.rows.Add(newStatusRow(severity, content))

	for len(smc.messages) > smc.maxMessages {
		smc.messages = smc.messages[1:]
		smc.rows.Remove(smc.rows.Objects[0])
	}

	smc.Refresh()
	smc.scroll.ScrollToBottom()
}

func newStatusRow(severity Severity, content string) fyne.CanvasObject {
	var icon fyne.Resource
	switch severity {
	case SeverityWarning:
		icon = theme.WarningIcon()
	case SeverityError, SeverityCritical:
		icon = theme.ErrorIcon()
	default:
		icon = theme.InfoIcon()
	}

	label := widget.NewLabel(content)
	label.Truncation = fyne.TextTruncateEllipsis
	label.TextStyle.Bold = severity != SeverityInfo

	return container.NewBorder(nil, nil, widget.NewIcon(icon), nil, label)
}

// AddInfoMessage adds an information message
func (smc *StatusMessagesContainer) AddInfoMessage(content string) {
	smc.AddMessage(SeverityInfo, content)
}

// AddWarningMessage adds a warning message
func (smc *StatusMessagesContainer) AddWarningMessage(content string) {
	smc.AddMessage(SeverityWarning, content)
}

// ClearMessages removes all messages
func (smc *StatusMessagesContainer) ClearMessages() {
	smc.messages = nil
	smc.rows.RemoveAll()
	smc.Refresh()
}

// GetMessages returns the messages currently shown, oldest first
func (smc *StatusMessagesContainer) GetMessages() []StatusMessage {
	return smc.messages
}
