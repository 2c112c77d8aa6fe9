package main

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"teamchat/domain"

	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 4, 10, 20, 30, 0, time.UTC)

	message, err := json.Marshal(domain.Message{UserEmail: "anna@example.com", Content: "hello"})
	req.NoError(err)
	r := describe(fmt.Sprintf("msg:chan:%019d:0123456789abcdef", at.UnixNano()), message)
	req.Equal("MSG", r.Type)
	req.Equal("10:20:30", r.Timestamp)
	req.Equal("01234567", r.EntityID)
	req.Equal("anna@example.com: hello", r.Detail)

	ch := "0d9e8f7a-6b5c-4d3e-8f2a-1b0c9d8e7f6a"
	user, err := json.Marshal(domain.User{Username: "anna", LastState: domain.LastState{LastChannel: &ch}})
	req.NoError(err)
	r = describe("user:anna@example.com", user)
	req.Equal("USER", r.Type)
	req.Equal("anna -> /channel/"+ch, r.Detail)

	r = describe("member:ws:anna@example.com", []byte("{}"))
	req.Equal("MEMBER", r.Type)
	req.Equal("Size: 2 bytes", r.Detail)

	r = describe("ws:abc", []byte("not json"))
	req.Equal("Error: unmarshal failed", r.Detail)
}
