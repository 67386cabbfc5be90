package handlers

import (
	"shwe-topup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// FAQHandler serves the static FAQ content
type FAQHandler struct{}

// NewFAQHandler creates a new FAQ handler
func NewFAQHandler() *FAQHandler {
	return &FAQHandler{}
}

// FAQItem is a single question and answer pair
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqItems = []FAQItem{
	{
		Question: "How do I buy credits?",
		Answer:   "To buy credits, go to the 'Buy Credits' section, choose your desired amount, select a payment method (KPay or WavePay), make the payment, and upload a screenshot as proof. Your credits will be added after admin approval.",
	},
	{
		Question: "What payment methods do you accept?",
		Answer:   "We currently accept KPay and WavePay transfers. After making the payment, you need to upload a screenshot of the transaction as proof.",
	},
	{
		Question: "How long does it take to get credits after payment?",
		Answer:   "Credit approval typically takes 1-24 hours during business hours. Once approved by our admin, credits will be automatically added to your account.",
	},
	{
		Question: "What can I buy with credits?",
		Answer:   "You can use credits to purchase various telecom products including data packages, minutes, points, bundled packages, and beautiful numbers from operators like ATOM, MPT, Mytel, and Ooredoo.",
	},
	{
		Question: "How do I check my order status?",
		Answer:   "You can check your order status in the 'My Orders' section. Orders go through stages: Pending, Processing, Completed. You'll see updates and admin notes there.",
	},
	{
		Question: "What if my payment was deducted but credits weren't added?",
		Answer:   "If your payment was successful but credits weren't added, please contact our admin through the contact option in your profile menu. Include your payment screenshot and transaction details.",
	},
	{
		Question: "Can I get a refund for my credits?",
		Answer:   "Credit purchases are generally non-refundable. However, if there's an issue with your order or a technical problem, please contact our admin for assistance.",
	},
	{
		Question: "How do I use my credits to buy products?",
		Answer:   "Browse the products section, select your desired item, enter your phone number, and confirm the purchase. The credits will be deducted from your account automatically.",
	},
	{
		Question: "What are beautiful numbers?",
		Answer:   "Beautiful numbers are special phone numbers with attractive patterns like repeating digits (e.g., 09111111111) or sequential numbers. They're available for purchase from various operators.",
	},
	{
		Question: "Can I transfer credits to another user?",
		Answer:   "Currently, credit transfers between users are not available. Each account's credits can only be used by the account owner.",
	},
	{
		Question: "What if I entered the wrong phone number for my order?",
		Answer:   "If you entered an incorrect phone number, contact our admin immediately through the profile menu. We may be able to update it if the order hasn't been processed yet.",
	},
	{
		Question: "Are there any fees for using the platform?",
		Answer:   "There are no additional fees for using our platform. The price you see for credits and products is the final price you pay.",
	},
}

// GetFAQ returns the FAQ items
// @Summary Get FAQ
// @Description Get the frequently asked questions and answers
// @Tags FAQ
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /faq [get]
func (h *FAQHandler) GetFAQ(c *fiber.Ctx) error {
	return response.Success(c, "FAQ retrieved successfully", fiber.Map{
		"items": faqItems,
	})
}
