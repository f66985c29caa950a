package routeros

import (
	"strconv"
	"strings"

	goros "github.com/go-routeros/routeros/v3"
	"github.com/go-routeros/routeros/v3/proto"
)

func mapReplyRows(reply *goros.Reply) []map[string]string {
	if reply == nil || len(reply.Re) == 0 {
		return []map[string]string{}
	}
	rows := make([]map[string]string, 0, len(reply.Re))
	for _, sentence := range reply.Re {
		rows = append(rows, mapSentence(sentence))
	}
	return rows
}

func mapSentence(sentence *proto.Sentence) map[string]string {
	mapped := make(map[string]string)
	if sentence == nil {
		return mapped
	}
	for key, value := range sentence.Map {
		mapped[key] = value
	}
	for _, pair := range sentence.List {
		mapped[pair.Key] = pair.Value
	}
	return mapped
}

func boolFromWord(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}

func canonicalMAC(value string) string {
	clean := strings.TrimSpace(strings.ToUpper(value))
	return strings.ReplaceAll(clean, "-", ":")
}

func parseInt64(value string) int64 {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
