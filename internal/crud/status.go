package crud

// Status is the closed set of outcomes every crud operation reports.
// Operations return (entity, Status, error): the error carries store
// failures only (connectivity, constraint blowups) and is never used
// for the outcomes below. The entity is non-nil if and only if the
// error is nil and the Status is Success.
type Status int

const (
	Success Status = iota
	// user
	UnameAlreadyExist
	EmailAlreadyExist
	UserNotFound
	// ticket
	TicketNotFound
	IssuerNotFound
	AssigneeNotFound
	SameIssuerAndAssignee
	// attachment
	FileNotFound
	FileAlreadyExist
	// message
	MessageNotFound
	ContentIsEmpty
	SenderNotFound
	ReceiverNotFound
	SameSenderAndReceiver
)

var statusNames = map[Status]string{
	Success:               "SUCCESS",
	UnameAlreadyExist:     "UNAME_ALREADY_EXIST",
	EmailAlreadyExist:     "EMAIL_ALREADY_EXIST",
	UserNotFound:          "USER_NOT_FOUND",
	TicketNotFound:        "TICKET_NOT_FOUND",
	IssuerNotFound:        "ISSUER_NOT_FOUND",
	AssigneeNotFound:      "ASSIGNEE_NOT_FOUND",
	SameIssuerAndAssignee: "SAME_ISSUER_AND_ASSIGNEE",
	FileNotFound:          "FILE_NOT_FOUND",
	FileAlreadyExist:      "FILE_ALREADY_EXIST",
	MessageNotFound:       "MESSAGE_NOT_FOUND",
	ContentIsEmpty:        "CONTENT_IS_EMPTY",
	SenderNotFound:        "SENDER_NOT_FOUND",
	ReceiverNotFound:      "RECEIVER_NOT_FOUND",
	SameSenderAndReceiver: "SAME_SENDER_AND_RECEIVER",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}
