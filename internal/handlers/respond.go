package handlers

import (
	"bytes"

	"github.com/bwmarrin/discordgo"

	"github.com/Fripe070/experienced/internal/constants"
	"github.com/Fripe070/experienced/internal/logging"
)

// response is what a routed operation hands back to the platform boundary.
type response struct {
	content   string
	embed     string
	card      []byte
	ephemeral bool
}

func textResponse(content string) *response {
	return &response{content: content, ephemeral: true}
}

func embedResponse(description string) *response {
	return &response{embed: description, ephemeral: true}
}

func cardResponse(image []byte) *response {
	return &response{card: image}
}

func (r *response) data() *discordgo.InteractionResponseData {
	data := &discordgo.InteractionResponseData{
		Content: r.content,
	}
	if r.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	if r.embed != "" {
		data.Embeds = []*discordgo.MessageEmbed{
			{Description: r.embed, Color: themeColor},
		}
	}
	if r.card != nil {
		data.Files = []*discordgo.File{
			{
				Name:        constants.CardAttachmentName,
				ContentType: "image/png",
				Reader:      bytes.NewReader(r.card),
			},
		}
	}
	return data
}

const themeColor = 0x333366

func sendResponse(s *discordgo.Session, i *discordgo.InteractionCreate, resp *response) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: resp.data(),
	})
	if err != nil {
		logging.Error("Failed to send interaction response",
			"interaction_id", i.ID,
			"error", err.Error(),
		)
	}
}

func sendPong(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponsePong,
	})
	if err != nil {
		logging.Error("Failed to acknowledge interaction",
			"interaction_id", i.ID,
			"error", err.Error(),
		)
	}
}
