package numerics

import "testing"

func TestLookupCategories(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{RPL_WELCOME, Reply},
		{RPL_ENDOFMOTD, Reply},
		{RPL_NAMREPLY, Reply},
		{RPL_SASLSUCCESS, Reply},
		{ERR_NOSUCHNICK, Error},
		{ERR_NICKNAMEINUSE, Error},
		{ERR_USERSDONTMATCH, Error},
	}
	for _, tt := range tests {
		if got := Lookup(tt.code); got != tt.want {
			t.Errorf("Lookup(%s) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestLookupUnknownCode(t *testing.T) {
	for _, code := range []string{"999", "000", "", "abc"} {
		if got := Lookup(code); got != NotClassified {
			t.Errorf("Lookup(%q) = %v, want NotClassified", code, got)
		}
	}
}

func TestIsReplyIsError(t *testing.T) {
	if !IsReply(RPL_WELCOME) {
		t.Error("RPL_WELCOME should be a reply")
	}
	if IsError(RPL_WELCOME) {
		t.Error("RPL_WELCOME should not be an error")
	}
	if !IsError(ERR_NEEDMOREPARAMS) {
		t.Error("ERR_NEEDMOREPARAMS should be an error")
	}
	if IsReply("999") || IsError("999") {
		t.Error("unknown code classified")
	}
}

func TestLogonErrors(t *testing.T) {
	members := []string{
		ERR_NONICKNAMEGIVEN,
		ERR_ERRONEUSNICKNAME,
		ERR_NICKNAMEINUSE,
		ERR_NICKCOLLISION,
		ERR_UNAVAILRESOURCE,
		ERR_NEEDMOREPARAMS,
		ERR_ALREADYREGISTRED,
		ERR_RESTRICTED,
	}
	for _, code := range members {
		if !LogonErrors.Contains(code) {
			t.Errorf("LogonErrors should contain %s", code)
		}
	}

	for _, code := range []string{ERR_NOSUCHNICK, RPL_WELCOME, "999"} {
		if LogonErrors.Contains(code) {
			t.Errorf("LogonErrors should not contain %s", code)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if Reply.String() != "reply" || Error.String() != "error" {
		t.Fatal("unexpected category names")
	}
	if NotClassified.String() != "not classified" {
		t.Fatal(NotClassified.String())
	}
}
