package steam

// EResult is a Steam result code.
type EResult int32

var eResultNames = map[EResult]string{
	0: "Invalid", 1: "OK", 2: "Fail", 3: "NoConnection", 5: "InvalidPassword",
	6: "LoggedInElsewhere", 7: "InvalidProtocolVer", 8: "InvalidParam", 9: "FileNotFound",
	10: "Busy", 11: "InvalidState", 12: "InvalidName", 13: "InvalidEmail", 14: "DuplicateName",
	15: "AccessDenied", 16: "Timeout", 17: "Banned", 18: "AccountNotFound", 19: "InvalidSteamID",
	20: "ServiceUnavailable", 21: "NotLoggedOn", 22: "Pending", 23: "EncryptionFailure",
	24: "InsufficientPrivilege", 25: "LimitExceeded", 26: "Revoked", 27: "Expired",
	28: "AlreadyRedeemed", 29: "DuplicateRequest", 30: "AlreadyOwned", 31: "IPNotFound",
	32: "PersistFailed", 33: "LockingFailed", 34: "LogonSessionReplaced", 35: "ConnectFailed",
	36: "HandshakeFailed", 37: "IOFailure", 38: "RemoteDisconnect", 39: "ShoppingCartNotFound",
	40: "Blocked", 41: "Ignored", 42: "NoMatch", 43: "AccountDisabled", 44: "ServiceReadOnly",
	45: "AccountNotFeatured", 46: "AdministratorOK", 47: "ContentVersion", 48: "TryAnotherCM",
	49: "PasswordRequiredToKickSession", 50: "AlreadyLoggedInElsewhere", 51: "Suspended",
	52: "Cancelled", 53: "DataCorruption", 54: "DiskFull", 55: "RemoteCallFailed",
	84: "RateLimitExceeded", 88: "TwoFactorCodeMismatch",
}

func (e EResult) String() string { return eResultNames[e] }

// EAccountType is the kind of a Steam account.
type EAccountType int32

var eAccountTypeNames = map[EAccountType]string{
	0: "Invalid", 1: "Individual", 2: "Multiseat", 3: "GameServer", 4: "AnonGameServer",
	5: "Pending", 6: "ContentServer", 7: "Clan", 8: "Chat", 9: "ConsoleUser", 10: "AnonUser",
}

func (e EAccountType) String() string { return eAccountTypeNames[e] }

// EPersonaState is a user presence state.
type EPersonaState int32

var ePersonaStateNames = map[EPersonaState]string{
	0: "Offline", 1: "Online", 2: "Busy", 3: "Away", 4: "Snooze",
	5: "LookingToTrade", 6: "LookingToPlay", 7: "Invisible",
}

func (e EPersonaState) String() string { return ePersonaStateNames[e] }

// EUniverse is a Steam universe.
type EUniverse int32

var eUniverseNames = map[EUniverse]string{
	0: "Invalid", 1: "Public", 2: "Beta", 3: "Internal", 4: "Dev",
}

func (e EUniverse) String() string { return eUniverseNames[e] }

// EClanRank is a member rank within a Steam group.
type EClanRank int32

var eClanRankNames = map[EClanRank]string{
	0: "None", 1: "Owner", 2: "Officer", 3: "Member", 4: "Moderator",
}

func (e EClanRank) String() string { return eClanRankNames[e] }

// EAppType is the kind of a Steam app.
type EAppType int32

var eAppTypeNames = map[EAppType]string{
	0: "Invalid", 1: "Game", 2: "Application", 4: "Tool", 8: "Demo", 16: "Media",
	32: "DLC", 64: "Guide", 128: "Driver", 256: "Config", 512: "Hardware", 1024: "Franchise",
	2048: "Video", 4096: "Plugin", 8192: "Music", 16384: "Series", 32768: "Comic", 65536: "Beta",
}

func (e EAppType) String() string { return eAppTypeNames[e] }

// EAccountFlags is a Steam account flag.
type EAccountFlags int32

var eAccountFlagsNames = map[EAccountFlags]string{
	0: "NormalUser", 1: "PersonaNameSet", 2: "Unbannable", 4: "PasswordSet", 8: "Support",
	16: "Admin", 32: "Supervisor", 64: "AppEditor", 128: "HWIDSet", 256: "PersonalQASet",
	512: "VacBeta", 1024: "Debug", 2048: "Disabled", 4096: "LimitedUser", 8192: "LimitedUserForce",
	16384: "EmailValidated", 32768: "MarketingTreatment", 65536: "OGGInviteOptOut",
	131072: "ForcePasswordChange", 262144: "ForceEmailVerification", 524288: "LogonExtraSecurity",
	1048576: "LogonExtraSecurityDisabled", 2097152: "Steam2MigrationComplete", 4194304: "NeedLogs",
	8388608: "Lockdown", 16777216: "MasterAppEditor", 33554432: "BannedFromWebAPI",
	67108864: "ClansOnlyFromFriends", 134217728: "GlobalModerator", 268435456: "ParentalSettings",
	536870912: "ThirdPartySupport", 1073741824: "NeedsSSANextSteamLogon",
}

func (e EAccountFlags) String() string { return eAccountFlagsNames[e] }

// EClanPermission is a Steam group permission.
type EClanPermission int32

var eClanPermissionNames = map[EClanPermission]string{
	0: "Nobody", 1: "Owner", 2: "Officer", 3: "OwnerAndOfficer", 4: "Member", 8: "Moderator",
	11: "OwnerOfficerModerator", 15: "AllMembers", 16: "OGGGameOwner", 128: "NonMember",
}

func (e EClanPermission) String() string { return eClanPermissionNames[e] }

// ECurrencyCode is a Steam wallet currency.
type ECurrencyCode int32

var eCurrencyCodeNames = map[ECurrencyCode]string{
	0: "Invalid", 1: "USD", 2: "GBP", 3: "EUR", 4: "CHF", 5: "RUB", 6: "PLN", 7: "BRL",
	8: "JPY", 9: "NOK", 10: "IDR", 11: "MYR", 12: "PHP", 13: "SGD", 14: "THB", 15: "VND",
	16: "KRW", 17: "TRY", 18: "UAH", 19: "MXN", 20: "CAD", 21: "AUD", 22: "NZD", 23: "CNY",
	24: "INR", 25: "CLP", 26: "PEN", 27: "COP", 28: "ZAR", 29: "HKD", 30: "TWD", 31: "SAR",
	32: "AED", 34: "ARS", 35: "ILS", 36: "BYN", 37: "KZT", 38: "KWD", 39: "QAR", 40: "CRC",
	41: "UYU",
}

func (e ECurrencyCode) String() string { return eCurrencyCodeNames[e] }

// EOSType is a client operating system.
type EOSType int32

var eOSTypeNames = map[EOSType]string{
	-700: "Web", -600: "IOSUnknown", -500: "AndroidUnknown", -400: "UMQ", -300: "PS3",
	-203: "LinuxUnknown", -202: "Linux22", -201: "Linux24", -200: "Linux26",
	-102: "MacOSUnknown", -101: "MacOS104", -1: "Unknown",
	0: "WinUnknown", 1: "Win311", 2: "Win95", 3: "Win98", 4: "WinME", 5: "WinNT", 6: "Win2000",
	7: "WinXP", 8: "Win2003", 9: "WinVista", 10: "Windows7", 11: "Win2008", 12: "Win2012",
	13: "Windows8", 14: "Windows81", 15: "Win2012R2", 16: "Windows10", 17: "Win2016",
}

func (e EOSType) String() string { return eOSTypeNames[e] }

// EPaymentMethod is a Steam store payment method.
type EPaymentMethod int32

var ePaymentMethodNames = map[EPaymentMethod]string{
	0: "None", 1: "ActivationCode", 2: "CreditCard", 3: "Giropay", 4: "PayPal", 5: "Ideal",
	6: "PaySafeCard", 7: "Sofort", 8: "GuestPass", 9: "WebMoney", 10: "MoneyBookers",
	11: "AliPay", 12: "Yandex", 13: "Kiosk", 14: "Qiwi", 15: "GameStop", 16: "HardwarePromo",
	17: "MoPay", 18: "BoletoBancario", 19: "BoaCompraGold", 20: "BancoDoBrasilOnline",
	21: "ItauOnline", 22: "BradescoOnline", 23: "Pagseguro", 24: "VisaBrazil", 25: "AmexBrazil",
	26: "Aura", 27: "Hipercard", 28: "MastercardBrazil", 29: "DinersCardBrazil",
	30: "AuthorizedDevice", 31: "MOLPoints", 32: "ClickAndBuy", 33: "Beeline", 34: "Konbini",
	35: "EClubPoints", 36: "CreditCardJapan", 37: "BankTransferJapan", 38: "PayEasyJapan",
	39: "Zong", 128: "Wallet", 129: "Valve", 130: "MasterComp", 131: "Promotional",
	256: "OEMTicket", 512: "Split", 1024: "Complimentary",
}

func (e EPaymentMethod) String() string { return ePaymentMethodNames[e] }

// EPersonaStateFlag is a persona state flag.
type EPersonaStateFlag int32

var ePersonaStateFlagNames = map[EPersonaStateFlag]string{
	1: "HasRichPresence", 2: "InJoinableGame", 4: "Golden", 8: "RemotePlayTogether",
	256: "ClientTypeWeb", 512: "ClientTypeMobile", 1024: "ClientTypeTenfoot",
	2048: "ClientTypeVR", 4096: "LaunchTypeGamepad", 8192: "LaunchTypeCompatTool",
}

func (e EPersonaStateFlag) String() string { return ePersonaStateFlagNames[e] }
