package constant

const (
	SubjectMemberJoined = "activity.member.joined"
	SubjectMemberLeft   = "activity.member.left"
)

const (
	OperationSignUp     = "signup"
	OperationUnregister = "unregister"
)
