// Package numerics classifies the three-digit numeric codes found in IRC
// server responses. The registry is built once at startup and never
// mutated afterwards, so lookups are safe from any number of goroutines
// without synchronization.
package numerics

// Category is the semantic class of a numeric code.
type Category int

const (
	// NotClassified is returned for codes the registry does not know.
	NotClassified Category = iota
	Reply
	Error
)

func (c Category) String() string {
	switch c {
	case Reply:
		return "reply"
	case Error:
		return "error"
	default:
		return "not classified"
	}
}

var categories = make(map[string]Category)

func init() {
	for _, code := range replyCodes {
		categories[code] = Reply
	}
	for _, code := range errorCodes {
		categories[code] = Error
	}
}

// Lookup returns the category of a numeric code. Unknown codes yield
// NotClassified rather than an error.
func Lookup(code string) Category {
	return categories[code]
}

// IsReply reports whether code is a known reply numeric.
func IsReply(code string) bool {
	return categories[code] == Reply
}

// IsError reports whether code is a known error numeric.
func IsError(code string) bool {
	return categories[code] == Error
}

// Group is a fixed set of numeric codes sharing a role. Groups are defined
// at startup and only ever tested for membership.
type Group map[string]struct{}

// NewGroup builds a Group from its member codes.
func NewGroup(codes ...string) Group {
	g := make(Group, len(codes))
	for _, code := range codes {
		g[code] = struct{}{}
	}
	return g
}

// Contains reports whether code belongs to the group.
func (g Group) Contains(code string) bool {
	_, ok := g[code]
	return ok
}

// LogonErrors are the error numerics a server can send during the
// nickname/registration handshake.
var LogonErrors = NewGroup(
	ERR_NONICKNAMEGIVEN,
	ERR_ERRONEUSNICKNAME,
	ERR_NICKNAMEINUSE,
	ERR_NICKCOLLISION,
	ERR_UNAVAILRESOURCE,
	ERR_NEEDMOREPARAMS,
	ERR_ALREADYREGISTRED,
	ERR_RESTRICTED,
)

var replyCodes = []string{
	RPL_WELCOME, RPL_YOURHOST, RPL_CREATED, RPL_MYINFO, RPL_ISUPPORT,
	RPL_USERHOST, RPL_ISON,
	RPL_AWAY, RPL_UNAWAY, RPL_NOWAWAY,
	RPL_WHOISUSER, RPL_WHOISSERVER, RPL_WHOISOPERATOR, RPL_WHOISIDLE,
	RPL_ENDOFWHOIS, RPL_WHOISCHANNELS, RPL_WHOWASUSER, RPL_ENDOFWHOWAS,
	RPL_LISTSTART, RPL_LIST, RPL_LISTEND, RPL_CHANNELMODEIS, RPL_UNIQOPIS,
	RPL_NOTOPIC, RPL_TOPIC, RPL_TOPICWHOTIME, RPL_INVITING, RPL_SUMMONING,
	RPL_INVITELIST, RPL_ENDOFINVITELIST, RPL_EXCEPTLIST, RPL_ENDOFEXCEPTLIST,
	RPL_BANLIST, RPL_ENDOFBANLIST,
	RPL_WHOREPLY, RPL_ENDOFWHO, RPL_NAMREPLY, RPL_ENDOFNAMES,
	RPL_VERSION, RPL_LINKS, RPL_ENDOFLINKS, RPL_INFO, RPL_ENDOFINFO,
	RPL_MOTDSTART, RPL_MOTD, RPL_ENDOFMOTD,
	RPL_TIME, RPL_USERSSTART, RPL_USERS, RPL_ENDOFUSERS, RPL_NOUSERS,
	RPL_HOSTHIDDEN,
	RPL_YOUREOPER, RPL_REHASHING, RPL_YOURESERVICE,
	RPL_TRACELINK, RPL_TRACECONNECTING, RPL_TRACEHANDSHAKE, RPL_TRACEUNKNOWN,
	RPL_TRACEOPERATOR, RPL_TRACEUSER, RPL_TRACESERVER, RPL_TRACESERVICE,
	RPL_TRACENEWTYPE, RPL_TRACECLASS, RPL_TRACERECONNECT, RPL_TRACELOG,
	RPL_TRACEEND,
	RPL_STATSLINKINFO, RPL_STATSCOMMANDS, RPL_ENDOFSTATS, RPL_STATSUPTIME,
	RPL_STATSOLINE,
	RPL_UMODEIS, RPL_SERVLIST, RPL_SERVLISTEND,
	RPL_LUSERCLIENT, RPL_LUSEROP, RPL_LUSERUNKNOWN, RPL_LUSERCHANNELS,
	RPL_LUSERME, RPL_LOCALUSERS, RPL_GLOBALUSERS,
	RPL_ADMINME, RPL_ADMINLOC1, RPL_ADMINLOC2, RPL_ADMINEMAIL,
	RPL_TRYAGAIN,
	RPL_LOGGEDIN, RPL_SASLSUCCESS,
}

var errorCodes = []string{
	ERR_NOSUCHNICK, ERR_NOSUCHSERVER, ERR_NOSUCHCHANNEL,
	ERR_CANNOTSENDTOCHAN, ERR_TOOMANYCHANNELS, ERR_WASNOSUCHNICK,
	ERR_TOOMANYTARGETS, ERR_NOSUCHSERVICE, ERR_NOORIGIN,
	ERR_NORECIPIENT, ERR_NOTEXTTOSEND, ERR_NOTOPLEVEL, ERR_WILDTOPLEVEL,
	ERR_BADMASK,
	ERR_UNKNOWNCOMMAND, ERR_NOMOTD, ERR_NOADMININFO, ERR_FILEERROR,
	ERR_NONICKNAMEGIVEN, ERR_ERRONEUSNICKNAME, ERR_NICKNAMEINUSE,
	ERR_NICKCOLLISION, ERR_UNAVAILRESOURCE,
	ERR_USERNOTINCHANNEL, ERR_NOTONCHANNEL, ERR_USERONCHANNEL, ERR_NOLOGIN,
	ERR_SUMMONDISABLED, ERR_USERSDISABLED,
	ERR_NOTREGISTERED, ERR_NEEDMOREPARAMS, ERR_ALREADYREGISTRED,
	ERR_NOPERMFORHOST, ERR_PASSWDMISMATCH, ERR_YOUREBANNEDCREEP,
	ERR_YOUWILLBEBANNED, ERR_KEYSET,
	ERR_CHANNELISFULL, ERR_UNKNOWNMODE, ERR_INVITEONLYCHAN,
	ERR_BANNEDFROMCHAN, ERR_BADCHANNELKEY, ERR_BADCHANMASK, ERR_NOCHANMODES,
	ERR_BANLISTFULL,
	ERR_NOPRIVILEGES, ERR_CHANOPRIVSNEEDED, ERR_CANTKILLSERVER,
	ERR_RESTRICTED, ERR_UNIQOPPRIVSNEEDED, ERR_NOOPERHOST,
	ERR_UMODEUNKNOWNFLAG, ERR_USERSDONTMATCH,
}
