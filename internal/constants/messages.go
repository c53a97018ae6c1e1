package constants

// User-visible response strings. The ranked/not-ranked wording is load
// bearing: existing deployments and their users expect these exact messages.
const (
	MsgBotsNotRanked   = "Bots aren't ranked, that would be silly!"
	MsgSelfNotRanked   = "You aren't ranked yet, because you haven't sent any messages!"
	MsgOtherNotRanked  = "%s#%s isn't ranked yet, because they haven't sent any messages!"
	MsgCardUpdated     = "Updated card!"
	MsgCardCleared     = "Card settings cleared!"
	MsgUnauthorized    = "This command can only be used by the bot's administrators."
	MsgImportQueued    = "Import queued! Your guild's legacy levels will be copied over shortly."
	MsgImportDuplicate = "An import for this guild is already queued."
	MsgImportForbidden = "You need the Manage Server permission to import levels."
	MsgConfigForbidden = "You need the Manage Server permission to change the bot's settings."
	MsgNoRoleRewards   = "This guild has no role rewards set up."
	MsgGuildBanned     = "This guild is banned from using the bot."
)

const CardAttachmentName = "card.png"
