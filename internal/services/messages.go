package services

// Caller-safe messages carried by Result values. Localization is the
// front-end's job, so everything here is plain English.
const (
	MsgCategoryNotFound  = "Category not found."
	MsgProductNotFound   = "Product not found."
	MsgCartNotFound      = "Cart not found."
	MsgCartItemNotFound  = "Item not found in cart."
	MsgOrderNotFound     = "Order not found."
	MsgEmptyCart         = "Cart is empty."
	MsgAccessDenied      = "Access denied."
	MsgOnlyPendingOrders = "Only pending orders can be cancelled."

	MsgCategoryNameTaken = "A category with this name already exists."
	MsgProductNameTaken  = "A product with this name already exists."

	MsgItemRemoved = "Item removed successfully."
	MsgCartCleared = "Cart cleared successfully."

	MsgInvalidCredentials = "Invalid username or password."
	MsgUsernameTaken      = "This username is already taken."
	MsgEmailTaken         = "This email is already registered."
	MsgUserRegistered     = "User registered successfully."

	MsgProductUnavailable = "Product unavailable."
)
