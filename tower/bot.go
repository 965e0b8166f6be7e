package tower

import (
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bwmarrin/discordgo"
)

type botIds struct {
	guild, channel string
}

type bot struct {
	dispatcher *dispatcher
	session    *discordgo.Session
	ids        botIds
	reply      func(i *discordgo.Interaction, content string)
}

func NewBot() *bot {
	b := &bot{dispatcher: NewDispatcher()}
	s, err := discordgo.New("Bot " + os.Getenv("BOT_TOKEN"))
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}
	b.session = s
	b.ids = botIds{
		guild:   os.Getenv("GUILD_ID"),
		channel: os.Getenv("CHANNEL_ID"),
	}
	b.reply = b.replyQuick
	s.AddHandler(b.onReady)
	s.AddHandler(b.onInteractionGo)
	return b
}

func (b *bot) Run() {
	err := b.session.Open()
	if err != nil {
		log.Fatalf("Error opening connection: %v", err)
	}
	b.setCommands()

	defer b.session.Close()
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	slog.Info("Bot is now running. Press CTRL-C to exit.")
	<-stop
}

var setCommand = &discordgo.ApplicationCommand{
	Name:        "set",
	Description: "Draw up to three sets of numbers",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "add",
			Description: "Add a set to the canvas",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "elements",
				Description: "Comma separated numbers, like 2, 3, 5",
				Required:    true,
			}},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "style",
			Description: "Pick the style of the next set",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "A, B, C or D",
				Required:    true,
			}},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "file",
			Description: "Switch to another file",
			Options: []*discordgo.ApplicationCommandOption{{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "File A to File E",
				Required:    true,
			}},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "undo",
			Description: "Undo or redo the last change",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "empty",
			Description: "Remove every set from the canvas",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "show",
			Description: "Show the diagram",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "files",
			Description: "List the files",
		},
	},
}

func (b *bot) setCommands() {
	uid := b.session.State.User.ID
	registeredCommands, _ := b.session.ApplicationCommands(uid, b.ids.guild)
	for _, v := range registeredCommands {
		b.session.ApplicationCommandDelete(uid, b.ids.guild, v.ID)
	}
	if _, err := b.session.ApplicationCommandCreate(uid, b.ids.guild, setCommand); err != nil {
		slog.Error("Could not register command", "command", setCommand.Name, "err", err)
	}
}

func (b *bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is up", "user", s.State.User.Username)
}

func (b *bot) onInteractionGo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	go b.onInteraction(i)
}

func (b *bot) onInteraction(i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	commandData := i.ApplicationCommandData()
	slog.Debug("Interaction received", "command", commandData.Name)
	if commandData.Name == setCommand.Name {
		b.onCommandSet(i)
	}
}

func (b *bot) onCommandSet(i *discordgo.InteractionCreate) {
	if b.ids.channel != "" && i.ChannelID != b.ids.channel {
		b.reply(i.Interaction, "This command can only be used in a specific channel.")
		slog.Warn("Command received in a wrong channel", "channel", i.ChannelID)
		return
	}
	command, arg := subcommand(i.ApplicationCommandData())
	reply, err := b.dispatcher.Run(command, arg)
	if err != nil {
		slog.Info("Command failed", "command", command, "arg", arg, "err", err)
		reply = "Error: " + err.Error()
	}
	b.reply(i.Interaction, reply)
}

// subcommand extracts the subcommand name and its only string option.
func subcommand(data discordgo.ApplicationCommandInteractionData) (name, arg string) {
	if len(data.Options) == 0 {
		return "", ""
	}
	sub := data.Options[0]
	for _, o := range sub.Options {
		if o.Type == discordgo.ApplicationCommandOptionString {
			return sub.Name, o.StringValue()
		}
	}
	return sub.Name, ""
}

func (b *bot) replyQuick(i *discordgo.Interaction, content string) {
	ir := discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	}
	if err := b.session.InteractionRespond(i, &ir); err != nil {
		slog.Error("Could not reply", "err", err)
	}
}
