package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"teamchat/domain"
)

type row struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Detail    string
}

func (r row) cells() []string {
	return []string{r.Key, r.Type, r.Timestamp, r.EntityID, r.Detail}
}

// describe turns a store entry into a printable row, based on the key prefix.
func describe(key string, val []byte) row {
	parts := strings.Split(key, ":")
	r := row{
		Key:       key,
		Type:      strings.ToUpper(parts[0]),
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch parts[0] {
	case "msg", "dm":
		if len(parts) < 4 {
			return r
		}
		if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
			r.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
		}
		r.EntityID = short(parts[3])
		var message struct {
			UserEmail   string `json:"user_email"`
			SenderEmail string `json:"sender_email"`
			Content     string `json:"content"`
		}
		if err := json.Unmarshal(val, &message); err != nil {
			r.Detail = "Error: unmarshal failed"
			return r
		}
		r.Detail = fmt.Sprintf("%s%s: %s", message.UserEmail, message.SenderEmail, message.Content)
	case "user":
		var user domain.User
		if err := json.Unmarshal(val, &user); err != nil {
			r.Detail = "Error: unmarshal failed"
			return r
		}
		r.Timestamp = user.CreatedAt.UTC().Format("15:04:05")
		r.Detail = fmt.Sprintf("%s -> %s", user.Username, domain.Resolve(user.LastState).Path())
	case "ws", "channel":
		var named struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		if err := json.Unmarshal(val, &named); err != nil {
			r.Detail = "Error: unmarshal failed"
			return r
		}
		r.EntityID = short(named.ID)
		r.Detail = named.Name
	}
	return r
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
