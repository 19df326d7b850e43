package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/serializer"
)

// SerializeOptions holds options for serializing a message back to a template.
type SerializeOptions struct {
	// Data is the JSON input. Read from Path when empty.
	Data []byte
	// Path is the JSON input file path.
	Path string
}

// SerializeMessage turns JSON into template text. The input is either a
// compiled artifact ({content, card, actionButtons}) or a Discord message
// ({content, embeds, components}).
func SerializeMessage(ctx context.Context, opts SerializeOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := opts.Data
	if len(data) == 0 {
		if opts.Path == "" {
			return "", NewValidationError("message data or path is required", nil)
		}
		var err error
		data, err = os.ReadFile(opts.Path)
		if err != nil {
			return "", NewSerializeError(fmt.Sprintf("failed to read %s", opts.Path), err)
		}
	}

	var artifact model.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return "", NewSerializeError("invalid JSON", err)
	}
	if artifact.Card != nil || len(artifact.Buttons) > 0 {
		debug.Debug("[app] SerializeMessage: input is an artifact")
		return serializer.Serialize(artifact.Card, artifact.Buttons, deref(artifact.Content)), nil
	}

	var msg discordgo.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", NewSerializeError("invalid Discord message", err)
	}
	debug.Debug("[app] SerializeMessage: input is a Discord message with %d embed(s)", len(msg.Embeds))
	return serializer.FromMessage(&msg), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
