package render

const terrastruct = "https://icons.terrastruct.com"

// iconRegistry maps diagram elements to icon URLs.
var iconRegistry = map[string]string{
	"internet": terrastruct + "/essentials%2F140-internet.svg",
	"gateway":  terrastruct + "/aws%2FNetworking%20%26%20Content%20Delivery%2FAmazon-VPC_Internet-Gateway_light-bg.svg",
	"vpc":      terrastruct + "/aws%2FNetworking%20%26%20Content%20Delivery%2FAmazon-VPC.svg",
	"subnet":   terrastruct + "/aws%2FNetworking%20%26%20Content%20Delivery%2FAmazon-VPC_VPN-Connection_light-bg.svg",
	"instance": terrastruct + "/aws%2FCompute%2FAmazon-EC2.svg",
	"database": terrastruct + "/aws%2FDatabase%2FAmazon-RDS.svg",
	"security": terrastruct + "/aws%2FSecurity%2C%20Identity%2C%20%26%20Compliance%2FAWS-Shield.svg",
}

// LookupIcon returns the icon URL for a diagram element, empty when none.
func LookupIcon(element string) string {
	return iconRegistry[element]
}
