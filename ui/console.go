// Package ui renders notices and listings on the terminal.
// It never reads input nor touches the session.
package ui

import (
	"fmt"
	"io"
	"kiki-chat/domain"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

type Console struct {
	out     io.Writer
	colours bool
}

func NewConsole(out io.Writer, colours bool) *Console {
	return &Console{out: out, colours: colours}
}

func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format+"\n", a...)
}

func (c *Console) Success(format string, a ...any) {
	c.styled(color.New(color.FgGreen), format, a...)
}

func (c *Console) Warn(format string, a ...any) {
	c.styled(color.New(color.FgYellow), format, a...)
}

func (c *Console) Error(format string, a ...any) {
	c.styled(color.New(color.FgRed, color.OpBold), format, a...)
}

func (c *Console) styled(style color.Style, format string, a ...any) {
	line := fmt.Sprintf(format, a...)
	if c.colours {
		line = style.Render(line)
	}
	_, _ = fmt.Fprintln(c.out, line)
}

// Rooms prints the rooms returned by a login, one row each.
func (c *Console) Rooms(rooms []domain.ChatRoom) {
	table := c.newTable([]string{"ID", "Name", "Messages"})
	for _, room := range rooms {
		table.Append([]string{
			strconv.Itoa(int(room.ID)),
			room.Name,
			strconv.Itoa(len(room.HistoryMessages)),
		})
	}
	table.Render()
}

// RoomRefs prints the joined room ids kept in the session.
func (c *Console) RoomRefs(refs []domain.ChatRoomRef) {
	table := c.newTable([]string{"ID"})
	for _, ref := range refs {
		table.Append([]string{strconv.Itoa(int(ref.ID))})
	}
	table.Render()
}

func (c *Console) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
