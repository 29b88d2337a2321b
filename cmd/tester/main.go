// Command tester is an interactive console client for the car chat hub.
// It logs in (or uses TESTER_TOKEN), opens the websocket and prints every
// pushed event while reading commands from stdin.
package main

import (
	"bufio"
	"bytes"
	"car-chat/domain"
	"car-chat/infrastructure/ws"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/olekukonko/tablewriter"
)

type incoming struct {
	Type      string          `json:"type"`
	RequestID string          `json:"requestId"`
	Data      json.RawMessage `json:"data"`
	Error     *ws.FrameError  `json:"error"`
}

type console struct {
	cfg     Config
	mu      sync.Mutex
	pending map[string]string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tester: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if !cfg.Colours {
		color.Disable()
	}

	token := cfg.Token
	if token == "" {
		if token, err = login(cfg); err != nil {
			return err
		}
	}

	hubURL, err := hubAddress(cfg.URL, token)
	if err != nil {
		return err
	}
	conn, _, err := websocket.DefaultDialer.Dial(hubURL, nil)
	if err != nil {
		return fmt.Errorf("dial hub: %w", err)
	}
	defer conn.Close()
	color.Green.Println("connected, type 'help' for commands")

	c := &console{cfg: cfg, pending: map[string]string{}}
	go c.readLoop(conn)

	scanner := bufio.NewScanner(os.Stdin)
	for seq := 1; scanner.Scan(); seq++ {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help":
			fmt.Println(usage)
			continue
		}
		inv, err := parseCommand(line, strconv.Itoa(seq))
		if err != nil {
			color.Yellow.Println(err)
			continue
		}
		c.mu.Lock()
		c.pending[inv.RequestID] = inv.Type
		c.mu.Unlock()
		if err := conn.WriteJSON(inv); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return scanner.Err()
}

func login(cfg Config) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": cfg.Email, "password": cfg.Password})
	resp, err := http.Post(strings.TrimRight(cfg.URL, "/")+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login: %s", resp.Status)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return out.Token, nil
}

// hubAddress maps the http base URL onto the websocket endpoint.
func hubAddress(base, token string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/hubs/chat")
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	q := u.Query()
	q.Set("access_token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *console) readLoop(conn *websocket.Conn) {
	for {
		var frame incoming
		if err := conn.ReadJSON(&frame); err != nil {
			color.Red.Printf("connection closed: %v\n", err)
			os.Exit(0)
		}
		c.print(frame)
	}
}

func (c *console) print(frame incoming) {
	switch frame.Type {
	case "error":
		color.Red.Printf("[%s] %s: %s\n", frame.RequestID, frame.Error.Code, frame.Error.Message)
	case "result":
		c.mu.Lock()
		op := c.pending[frame.RequestID]
		delete(c.pending, frame.RequestID)
		c.mu.Unlock()
		c.printResult(op, frame.Data)
	case "ReceiveMessage":
		color.Cyan.Printf("message %s\n", frame.Data)
	case "NewMessageNotification":
		color.Magenta.Printf("notification %s\n", frame.Data)
	case "ReceiveSystemMessage":
		color.Gray.Printf("system %s\n", frame.Data)
	case "ReceiveSupportMessage", "ReceiveAdminMessage":
		color.Blue.Printf("%s %s\n", frame.Type, frame.Data)
	default:
		fmt.Printf("%s %s\n", frame.Type, frame.Data)
	}
}

func (c *console) printResult(op string, data json.RawMessage) {
	switch op {
	case ws.OpRecentCarMessages:
		var views []domain.MessageView
		if json.Unmarshal(data, &views) == nil {
			renderMessages(views)
			return
		}
	case ws.OpConversationDetails:
		var detail domain.ConversationDetail
		if json.Unmarshal(data, &detail) == nil {
			color.Green.Printf("%s with %s, online=%t\n", detail.GroupName, detail.OtherUserID, detail.IsUserOnline)
			renderMessages(detail.RecentMessages)
			return
		}
	case ws.OpUserConversations:
		var summaries []domain.ConversationSummary
		if json.Unmarshal(data, &summaries) == nil {
			table := newTable([]string{"User", "Car", "Last message"})
			for _, s := range summaries {
				table.Append([]string{s.UserID, s.CarID, s.LastMessageTime})
			}
			table.Render()
			return
		}
	}
	color.Green.Printf("ok %s %s\n", op, data)
}

func renderMessages(views []domain.MessageView) {
	table := newTable([]string{"Time", "From", "Car", "Text"})
	for _, v := range views {
		from := v.SenderID
		if v.IsOwnMessage {
			from = "me"
		}
		table.Append([]string{v.Timestamp, from, v.ContextID, v.Text})
	}
	table.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}
