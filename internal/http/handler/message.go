package handler

const (
	oopsErr       = "Oops! Something went wrong. Please try again later."
	unexpectedErr = "unexpected error occurred"
	invalidErr    = "Invalid request payload"

	welcomeMsg        = "Welcome to the Plug Share API"
	userCreatedMsg    = "User created successfully"
	usernameTakenMsg  = "Username already exists"
	emptyUsernameMsg  = "Username must not be empty"
	userNotFoundMsg   = "User not found"
	wrongPasswordMsg  = "Incorrect password"
	plugNotFoundMsg   = "Plug not found"
	plugAddedMsg      = "Plug added successfully"
	plugEditedMsg     = "Plug updated successfully"
	plugDeletedMsg    = "Plug deleted"
	plugLikedMsg      = "Plug liked"
	plugDislikedMsg   = "Plug disliked"
	signInSuccessMsg  = "Sign in successful"
)

// Response is the JSON body of every endpoint. Each response carries a
// timestamp added at write time.
type Response map[string]any
